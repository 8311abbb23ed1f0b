package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/studafishka/afishactl/internal/platform"
	"github.com/studafishka/afishactl/internal/tui"
)

const eventTimeLayout = "Mon 02 Jan 2006 15:04"

func (rt *runtime) renderHome(ctx context.Context, w io.Writer) error {
	return rt.renderEventList(ctx, w, platform.ListEventsOptions{})
}

func (rt *runtime) renderEventList(ctx context.Context, w io.Writer, opts platform.ListEventsOptions) error {
	events, err := rt.client.ListEvents(ctx, opts)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No upcoming events.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tTITLE\tLOCATION\tTAGS\tSPOTS")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.DtStart.Local().Format(eventTimeLayout),
			e.Title,
			e.LocationText,
			tagNames(e.Tags),
			spotsLabel(e.SpotsLeft),
		)
	}
	return tw.Flush()
}

func (rt *runtime) renderEventDetail(ctx context.Context, w io.Writer, id int) error {
	event, err := rt.client.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, tui.TitleStyle.Render(event.Title))
	fmt.Fprintf(w, "When:      %s\n", event.DtStart.Local().Format(eventTimeLayout))
	fmt.Fprintf(w, "Where:     %s\n", event.LocationText)
	fmt.Fprintf(w, "Organizer: %s\n", displayName(event.Organizer.Name, event.Organizer.Username))
	if len(event.Tags) > 0 {
		fmt.Fprintf(w, "Tags:      %s\n", tagNames(event.Tags))
	}
	fmt.Fprintf(w, "Spots:     %s\n", spotsLabel(event.SpotsLeft))
	if event.IsRegistered {
		fmt.Fprintln(w, tui.Success("You are registered for this event."))
	}
	if event.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, event.Description)
	}
	return nil
}

func (rt *runtime) renderMyEvents(ctx context.Context, w io.Writer) error {
	regs, err := rt.client.MyRegistrations(ctx)
	if err != nil {
		return err
	}

	if len(regs) == 0 {
		fmt.Fprintln(w, "You have no registrations.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tEVENT\tLOCATION\tATTENDED\tQR CODE")
	for _, r := range regs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.EventDtStart.Local().Format(eventTimeLayout),
			r.EventTitle,
			r.EventLocation,
			yesNo(r.Attended),
			r.QRCodeData,
		)
	}
	return tw.Flush()
}

func (rt *runtime) renderDashboard(ctx context.Context, w io.Writer) error {
	events, err := rt.client.ListEvents(ctx, platform.ListEventsOptions{})
	if err != nil {
		return err
	}

	var mine []platform.Event
	for _, e := range events {
		if e.IsOrganizer {
			mine = append(mine, e)
		}
	}

	fmt.Fprintln(w, tui.TitleStyle.Render("Your events"))
	if len(mine) == 0 {
		fmt.Fprintln(w, "You have not created any events yet. Try 'afishactl events create'.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tTITLE\tSPOTS")
	for _, e := range mine {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			e.ID,
			e.DtStart.Local().Format(eventTimeLayout),
			e.Title,
			spotsLabel(e.SpotsLeft),
		)
	}
	return tw.Flush()
}

func (rt *runtime) renderParticipants(ctx context.Context, w io.Writer, eventID int) error {
	regs, err := rt.client.EventParticipants(ctx, eventID)
	if err != nil {
		return err
	}

	if len(regs) == 0 {
		fmt.Fprintln(w, "No participants yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STUDENT\tREGISTERED\tATTENDED")
	for _, r := range regs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			displayName(r.Student.Name, r.Student.Username),
			r.RegisteredAt.Local().Format(eventTimeLayout),
			yesNo(r.Attended),
		)
	}
	return tw.Flush()
}

func tagNames(tags []platform.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return strings.Join(names, ",")
}

func spotsLabel(left *int) string {
	if left == nil {
		return "unlimited"
	}
	return fmt.Sprintf("%d left", *left)
}

func displayName(name, username string) string {
	if name != "" {
		return name
	}
	return username
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// parseEventTime accepts the forms organizers actually type.
func parseEventTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04",
		"2006-01-02T15:04",
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q: use RFC3339 or \"2006-01-02 15:04\"", value)
}
