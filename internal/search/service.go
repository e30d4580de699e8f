package search

import (
	"log"

	"livelyicons/internal/eventbus"
)

// State holds search state
type State struct {
	Query        string
	Matches      []Match
	CurrentMatch int // index into Matches
}

// Ranker orders candidates for a query, best first
type Ranker func(query string, candidates []string) []Match

// Service keeps one interactive search session: the query, its ranked
// matches and a cursor that wraps around them
type Service struct {
	state      *State
	bus        eventbus.EventBus
	candidates func() []string
	ranker     Ranker
	listAll    bool // an empty query lists every candidate instead of clearing
}

// NewService creates a new search service. candidates is called on every
// search so newly discovered icons are picked up.
func NewService(bus eventbus.EventBus, candidates func() []string) *Service {
	return &Service{
		state:      &State{},
		bus:        bus,
		candidates: candidates,
		ranker:     Rank,
	}
}

// SetRanker replaces the default fuzzy ranking
func (s *Service) SetRanker(r Ranker) {
	if r == nil {
		r = Rank
	}
	s.ranker = r
}

// SetListAll makes an empty query run the ranker over every candidate.
// The ranker is then responsible for ordering unfiltered results.
func (s *Service) SetListAll(listAll bool) {
	s.listAll = listAll
}

// SetQuery runs a new search. An unchanged query is a no-op.
func (s *Service) SetQuery(query string) {
	if query == s.state.Query && s.state.Matches != nil {
		return
	}

	s.state.Query = query
	if query == "" && !s.listAll {
		s.clearSearch()
		return
	}

	s.performSearch()
}

// Refresh re-ranks the current query against the current candidates
func (s *Service) Refresh() {
	if s.state.Query == "" && !s.listAll {
		return
	}
	s.performSearch()
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.state.Query = ""
	if s.listAll {
		s.performSearch()
		return
	}
	s.clearSearch()
}

// NavigateNext moves to the next search result
func (s *Service) NavigateNext() {
	if len(s.state.Matches) == 0 {
		return
	}
	s.state.CurrentMatch = (s.state.CurrentMatch + 1) % len(s.state.Matches)
}

// NavigatePrevious moves to the previous search result
func (s *Service) NavigatePrevious() {
	if len(s.state.Matches) == 0 {
		return
	}
	s.state.CurrentMatch--
	if s.state.CurrentMatch < 0 {
		s.state.CurrentMatch = len(s.state.Matches) - 1
	}
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatches returns the ranked matches, best first
func (s *Service) GetMatches() []Match {
	return s.state.Matches
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Matches)
}

// GetCurrentMatch returns the match under the cursor
func (s *Service) GetCurrentMatch() (Match, bool) {
	if len(s.state.Matches) == 0 {
		return Match{}, false
	}
	return s.state.Matches[s.state.CurrentMatch], true
}

// GetCurrentMatchIndex returns the cursor position, -1 without matches
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.CurrentMatch
}

func (s *Service) performSearch() {
	var current string
	if m, ok := s.GetCurrentMatch(); ok {
		current = m.Item
	}

	s.state.Matches = s.ranker(s.state.Query, s.candidates())

	// Keep the cursor on the same item when it is still a match
	s.state.CurrentMatch = 0
	for i, m := range s.state.Matches {
		if m.Item == current {
			s.state.CurrentMatch = i
			break
		}
	}

	log.Printf("Search completed for '%s': found %d matches", s.state.Query, len(s.state.Matches))

	top := ""
	if len(s.state.Matches) > 0 {
		top = s.state.Matches[0].Item
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.SearchCompletedEvent{
			Query:      s.state.Query,
			MatchCount: len(s.state.Matches),
			TopMatch:   top,
		})
	}
}

func (s *Service) clearSearch() {
	s.state.Matches = nil
	s.state.CurrentMatch = 0

	if s.bus != nil {
		s.bus.Publish(eventbus.SearchClearedEvent{})
	}
}
