package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dmitrijs2005/vmis/internal/client/forms"
	"github.com/dmitrijs2005/vmis/internal/client/listing"
	"github.com/dmitrijs2005/vmis/internal/client/services"
	"github.com/dmitrijs2005/vmis/internal/common"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

func (a *App) service(kind string) (*services.RecordService, error) {
	svc, ok := a.records[resources.Kind(strings.ToLower(kind))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (see 'kinds')", common.ErrUnknownKind, kind)
	}
	return svc, nil
}

// Kinds prints every resource kind the client knows about.
func (a *App) Kinds(ctx context.Context) error {
	for _, def := range resources.All() {
		fmt.Fprintf(a.out, "%-12s %s\n", def.Kind, def.Title)
	}
	return nil
}

// Dashboard prints the server-side aggregate counts.
func (a *App) Dashboard(ctx context.Context) error {
	stats, err := a.dashboard.Stats(ctx, a.sess)
	if err != nil {
		return a.report(ctx, err)
	}
	if stats.Name != "" {
		fmt.Fprintf(a.out, "Hello, %s\n", stats.Name)
	}
	fmt.Fprintf(a.out, "Dispatches:                  %d\n", stats.DispatchCount)
	fmt.Fprintf(a.out, "Reminders:                   %d\n", stats.ReminderCount)
	fmt.Fprintf(a.out, "Repair requests:             %d\n", stats.RepairRequestCount)
	fmt.Fprintf(a.out, "Maintenance recommendations: %d\n", stats.MainCount)
	return nil
}

// List reloads the canonical list of kind and prints it.
func (a *App) List(ctx context.Context, kind string) error {
	svc, err := a.service(kind)
	if err != nil {
		return a.report(ctx, err)
	}
	recs, err := svc.Load(ctx, a.sess)
	if errors.Is(err, listing.ErrStale) {
		return nil
	}
	if err != nil {
		return a.report(ctx, err)
	}

	def := svc.Definition()
	fmt.Fprintf(a.out, "%s (%d total)\n", def.Title, svc.Count())
	printRecords(a.out, def, recs)
	return nil
}

// Search filters the already loaded list of kind without a network call. The
// list is loaded first if it never was.
func (a *App) Search(ctx context.Context, kind, query string) error {
	svc, err := a.service(kind)
	if err != nil {
		return a.report(ctx, err)
	}
	if !svc.Loaded() {
		if _, err := svc.Load(ctx, a.sess); err != nil && !errors.Is(err, listing.ErrStale) {
			return a.report(ctx, err)
		}
	}

	visible := svc.Visible(query)
	fmt.Fprintf(a.out, "%d of %d match\n", len(visible), svc.Count())
	printRecords(a.out, svc.Definition(), visible)
	return nil
}

// Show prints every field of one record from the loaded list.
func (a *App) Show(ctx context.Context, kind, id string) error {
	svc, err := a.service(kind)
	if err != nil {
		return a.report(ctx, err)
	}
	if !svc.Loaded() {
		if _, err := svc.Load(ctx, a.sess); err != nil && !errors.Is(err, listing.ErrStale) {
			return a.report(ctx, err)
		}
	}

	rec, ok := svc.Find(id)
	if !ok {
		fmt.Fprintf(a.out, "No %s with id %s\n", svc.Definition().Kind, id)
		return nil
	}
	printRecord(a.out, svc.Definition(), rec)
	return nil
}

// Add walks the user through the form of kind. After a validation or server
// failure the user may retry; entered values are offered again as defaults.
func (a *App) Add(ctx context.Context, kind string) error {
	svc, err := a.service(kind)
	if err != nil {
		return a.report(ctx, err)
	}
	form := svc.NewForm()

	for {
		if err := a.fillForm(form); err != nil {
			return err
		}

		created, err := svc.Submit(ctx, a.sess, form)
		if err == nil || errors.Is(err, services.ErrReloadFailed) {
			fmt.Fprintf(a.out, "Created %s %s\n", svc.Definition().Kind, created.ID())
			_ = a.report(ctx, err)
			if err == nil {
				fmt.Fprintf(a.out, "%s now has %d records\n", svc.Definition().Title, svc.Count())
			}
			return nil
		}

		_ = a.report(ctx, err)
		if !a.isLoggedIn() {
			return err
		}
		retry, rerr := GetConfirmation(a.reader, "Edit and submit again?", a.out)
		if rerr != nil || !retry {
			return err
		}
	}
}

// fillForm prompts for every field. An empty answer keeps the current value;
// a single "-" clears it.
func (a *App) fillForm(form *forms.Form) error {
	for _, f := range form.Definition().Fields {
		answer, err := getSimpleText(a.reader, fieldPrompt(f, form.Value(f.Name)), a.out)
		if err != nil {
			return err
		}
		switch answer {
		case "":
			continue
		case "-":
			answer = ""
		}
		if err := form.Set(f.Name, answer); err != nil {
			return err
		}
	}
	return nil
}

func fieldPrompt(f resources.Field, current string) string {
	var b strings.Builder
	b.WriteString(f.Label)
	if f.Required {
		b.WriteString(" (required)")
	}
	switch f.Kind {
	case resources.FieldDate:
		b.WriteString(" [YYYY-MM-DD]")
	case resources.FieldChoice:
		b.WriteString(" [" + strings.Join(f.Options, "/") + "]")
	}
	if current != "" {
		fmt.Fprintf(&b, " {%s}", current)
	}
	return b.String()
}

// printRecords prints one line per record: its id and search fields.
func printRecords(w io.Writer, def resources.Definition, recs []resources.Record) {
	for _, rec := range recs {
		parts := []string{"#" + rec.ID()}
		for _, name := range def.SearchFields {
			if v, ok := rec.Text(name); ok {
				parts = append(parts, fmt.Sprintf("%s: %s", name, v))
			}
		}
		fmt.Fprintln(w, strings.Join(parts, " | "))
	}
}

// printRecord prints the known fields in definition order, then any extra
// fields the server sent, sorted by name.
func printRecord(w io.Writer, def resources.Definition, rec resources.Record) {
	fmt.Fprintf(w, "%s #%s\n", def.Title, rec.ID())

	seen := map[string]bool{resources.IDField: true}
	for _, f := range def.Fields {
		seen[f.Name] = true
		if v, ok := rec.Text(f.Name); ok {
			fmt.Fprintf(w, "  %s: %s\n", f.Label, v)
		}
	}

	extra := make([]string, 0)
	for name := range rec {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		if v, ok := rec.Text(name); ok {
			fmt.Fprintf(w, "  %s: %s\n", name, v)
		}
	}
}
