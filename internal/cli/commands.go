package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"livelyicons/internal/animation"
	"livelyicons/internal/catalog"
	"livelyicons/internal/domain"
	"livelyicons/internal/motion"
	"livelyicons/internal/ui/logic"
)

func (a *App) search(ctx context.Context, args []string) error {
	var (
		configPath string
		limit      int
		scores     bool
		keywords   bool
		copyTop    bool
		dir        string
	)
	fs := a.newFlagSet("search", &configPath)
	fs.IntVarP(&limit, "limit", "n", 0, "maximum number of results (0 for all)")
	fs.BoolVar(&scores, "scores", false, "print scores next to names")
	fs.BoolVar(&keywords, "keywords", false, "also match icon keywords")
	fs.BoolVar(&copyTop, "copy", false, "copy the best match's JSX to the clipboard")
	fs.StringVar(&dir, "dir", "", "icon source directory or registry file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	raw := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if raw == "" {
		return fmt.Errorf("%w: search needs a query", ErrUsage)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if !fs.Changed("limit") {
		limit = cfg.Search.Limit
	}
	if !fs.Changed("keywords") {
		keywords = cfg.Search.Keywords
	}
	if !fs.Changed("dir") {
		dir = cfg.IconsDir
	}

	icons, err := loadIcons(ctx, dir)
	if err != nil {
		return err
	}

	query := logic.ParseQuery(raw)
	if len(query.Unknown) > 0 {
		return fmt.Errorf("%w: unknown filter %s", ErrUsage, strings.Join(query.Unknown, ", "))
	}
	if query.Text == "" && !query.HasFilters() {
		return fmt.Errorf("%w: search needs a query", ErrUsage)
	}

	rows := logic.Limit(logic.Rank(query, icons, keywords, logic.SortByScore), limit)
	if len(rows) == 0 {
		return fmt.Errorf("%w for %q", errNoMatch, raw)
	}

	for _, row := range rows {
		switch {
		case !scores:
			fmt.Fprintln(a.Stdout, row.Icon.Name)
		case row.Keyword != "":
			fmt.Fprintf(a.Stdout, "%s\t%.1f\t(%s)\n", row.Icon.Name, row.Score, row.Keyword)
		default:
			fmt.Fprintf(a.Stdout, "%s\t%.1f\n", row.Icon.Name, row.Score)
		}
	}

	if copyTop {
		top := rows[0].Icon
		snippet := catalog.Snippet(top, "", "", nil)
		if err := a.Copy(snippet); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintf(a.Stderr, "copied %s\n", snippet)
	}
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	var (
		configPath string
		category   string
		motionName string
		usePager   bool
		dir        string
	)
	fs := a.newFlagSet("list", &configPath)
	fs.StringVar(&category, "category", "", "only icons in this category")
	fs.StringVar(&motionName, "motion", "", "only icons of this motion type")
	fs.BoolVar(&usePager, "pager", false, "show the list in a pager")
	fs.StringVar(&dir, "dir", "", "icon source directory or registry file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: list takes no arguments", ErrUsage)
	}

	var m motion.MotionType
	if motionName != "" {
		parsed, ok := motion.ParseMotionType(motionName)
		if !ok {
			return fmt.Errorf("%w: unknown motion type %q", ErrUsage, motionName)
		}
		m = parsed
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if !fs.Changed("pager") {
		usePager = cfg.UISettings.UsePager
	}
	if !fs.Changed("dir") {
		dir = cfg.IconsDir
	}

	icons, err := loadIcons(ctx, dir)
	if err != nil {
		return err
	}
	icons = catalog.Filter(icons, strings.ToLower(category), string(m))

	var buf bytes.Buffer
	writeIconTable(&buf, icons)

	if usePager {
		return a.Pager(&buf)
	}
	_, err = io.Copy(a.Stdout, &buf)
	return err
}

func writeIconTable(w io.Writer, icons []domain.Icon) {
	for _, icon := range icons {
		fmt.Fprintf(w, "%-24s %-14s %s\n", icon.Name, icon.Category, icon.Motion)
	}
}

func (a *App) categories(ctx context.Context, args []string) error {
	var configPath, dir string
	fs := a.newFlagSet("categories", &configPath)
	fs.StringVar(&dir, "dir", "", "icon source directory or registry file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if !fs.Changed("dir") {
		dir = cfg.IconsDir
	}

	icons, err := loadIcons(ctx, dir)
	if err != nil {
		return err
	}
	for _, c := range catalog.Categories(icons) {
		fmt.Fprintf(a.Stdout, "%-14s %d\n", c.Name, c.Count)
	}
	return nil
}

func (a *App) resolve(ctx context.Context, args []string) error {
	var (
		configPath    string
		motionName    string
		triggerName   string
		animated      string
		reducedMotion bool
		disabled      bool
		dir           string
	)
	fs := a.newFlagSet("resolve", &configPath)
	fs.StringVar(&motionName, "motion", "", "motion type (default: icon's own, then config)")
	fs.StringVar(&triggerName, "trigger", "", "trigger type (default from config)")
	fs.StringVar(&animated, "animated", "", "explicit override: true or false")
	fs.BoolVar(&reducedMotion, "reduced-motion", false, "simulate the reduced-motion preference")
	fs.BoolVar(&disabled, "disabled", false, "simulate animations disabled by context")
	fs.StringVar(&dir, "dir", "", "icon source directory or registry file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: resolve takes at most one icon name", ErrUsage)
	}

	var override *bool
	if animated != "" {
		b, err := strconv.ParseBool(animated)
		if err != nil {
			return fmt.Errorf("%w: --animated must be true or false, got %q", ErrUsage, animated)
		}
		override = animation.Bool(b)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctxAnim := cfg.Context()
	if fs.Changed("reduced-motion") {
		ctxAnim.ReducedMotion = reducedMotion
	}
	if disabled {
		ctxAnim.Enabled = false
	}

	m := cfg.Animation.DefaultMotion
	if fs.NArg() == 1 {
		if !fs.Changed("dir") {
			dir = cfg.IconsDir
		}
		icons, err := loadIcons(ctx, dir)
		if err != nil {
			return err
		}
		icon, ok := findIcon(icons, fs.Arg(0))
		if !ok {
			return fmt.Errorf("unknown icon %q", fs.Arg(0))
		}
		m = icon.Motion
	}
	if motionName != "" {
		parsed, ok := motion.ParseMotionType(motionName)
		if !ok {
			fmt.Fprintf(a.Stderr, "lively: unknown motion type %q, using %s\n", motionName, parsed)
		}
		m = parsed
	}

	t := cfg.Animation.DefaultTrigger
	if triggerName != "" {
		parsed, ok := motion.ParseTriggerType(triggerName)
		if !ok {
			fmt.Fprintf(a.Stderr, "lively: unknown trigger type %q, using %s\n", triggerName, parsed)
		}
		t = parsed
	}

	result := animation.Resolve(override, ctxAnim, m, t)
	enc := json.NewEncoder(a.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func findIcon(icons []domain.Icon, name string) (domain.Icon, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, icon := range icons {
		if icon.Name == name {
			return icon, true
		}
	}
	return domain.Icon{}, false
}
