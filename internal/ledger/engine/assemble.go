// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package engine

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/timeledger-io/timeledger/internal/ledger"
)

// ListEntries batch-loads a user's entries whose activity overlaps the
// inclusive calendar-day range [from, to] and assembles day-bucketed,
// duration-summed views. The segment, label, and entry loads are
// independent reads and run concurrently; results are joined in memory.
func (e *Engine) ListEntries(
	ctx context.Context,
	userID string,
	from time.Time,
	to time.Time,
	includeDeleted bool,
) ([]ledger.DayGroup, error) {
	fromStart := dayStart(from)
	toEnd := dayStart(to).Add(24*time.Hour - time.Nanosecond)

	ids, err := e.store.CandidateEntryIDs(ctx, userID, fromStart, toEnd, !includeDeleted)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ledger.DayGroup{}, nil
	}

	var (
		entries       []ledger.Entry
		segsByEntry   map[string][]ledger.Segment
		labelsByEntry map[string][]string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = e.store.EntriesByIDs(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		segsByEntry, err = e.store.SegmentsByEntryIDs(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		labelsByEntry, err = e.store.LabelIDsByEntryIDs(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Resolve reference data for only the distinct ids referenced.
	projects, labels, err := e.resolveReferences(ctx, entries, labelsByEntry)
	if err != nil {
		return nil, err
	}

	now := e.now()
	views := make([]ledger.EntryView, 0, len(entries))
	for i := range entries {
		entry := &entries[i]
		views = append(views, buildView(
			entry,
			segsByEntry[entry.ID],
			pickLabels(labelsByEntry[entry.ID], labels),
			pickProject(entry.ProjectID, projects),
			now,
		))
	}

	return groupByDay(views), nil
}

// assembleEntry builds the full view of one entry. Used by the mutation
// engine to return the post-commit state.
func (e *Engine) assembleEntry(
	ctx context.Context,
	entryID string,
) (*ledger.EntryView, error) {
	entry, err := e.store.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ledger.ErrNotFound
	}

	segs, err := e.store.ListSegments(ctx, entryID)
	if err != nil {
		return nil, err
	}
	labelIDs, err := e.store.LabelIDs(ctx, entryID)
	if err != nil {
		return nil, err
	}

	resolvedLabels, err := e.labels.ResolveLabels(ctx, labelIDs)
	if err != nil {
		return nil, err
	}

	var project *ledger.ProjectInfo
	if entry.ProjectID != nil {
		project, err = e.projects.ResolveProject(ctx, *entry.ProjectID)
		if err != nil {
			return nil, err
		}
	}

	view := buildView(entry, segs, resolvedLabels, project, e.now())
	return &view, nil
}

// resolveReferences resolves the distinct project and label ids referenced
// by the loaded entries.
func (e *Engine) resolveReferences(
	ctx context.Context,
	entries []ledger.Entry,
	labelsByEntry map[string][]string,
) (map[string]*ledger.ProjectInfo, map[string]ledger.Label, error) {
	projectIDs := map[string]struct{}{}
	for i := range entries {
		if entries[i].ProjectID != nil {
			projectIDs[*entries[i].ProjectID] = struct{}{}
		}
	}

	projects := make(map[string]*ledger.ProjectInfo, len(projectIDs))
	for id := range projectIDs {
		p, err := e.projects.ResolveProject(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		projects[id] = p
	}

	labelIDSet := map[string]struct{}{}
	for _, ids := range labelsByEntry {
		for _, id := range ids {
			labelIDSet[id] = struct{}{}
		}
	}
	distinctLabelIDs := make([]string, 0, len(labelIDSet))
	for id := range labelIDSet {
		distinctLabelIDs = append(distinctLabelIDs, id)
	}

	resolved, err := e.labels.ResolveLabels(ctx, distinctLabelIDs)
	if err != nil {
		return nil, nil, err
	}
	labels := make(map[string]ledger.Label, len(resolved))
	for _, l := range resolved {
		labels[l.ID] = l
	}

	return projects, labels, nil
}

// buildView assembles one entry's read model: total duration, running
// state, and the segment views with live elapsed substituted for a running
// segment.
func buildView(
	entry *ledger.Entry,
	segs []ledger.Segment,
	labels []ledger.Label,
	project *ledger.ProjectInfo,
	now time.Time,
) ledger.EntryView {
	view := ledger.EntryView{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Description: entry.Description,
		Project:     project,
		Issue:       entry.Issue,
		Labels:      labels,
		IsActive:    entry.IsActive,
		CreatedAt:   entry.CreatedAt,
		Segments:    make([]ledger.SegmentView, 0, len(segs)),
	}
	if view.Labels == nil {
		view.Labels = []ledger.Label{}
	}

	// Latest segment start wins; creation time is only the fallback for
	// entries with no timed segment at all.
	var lastSegmentAt time.Time
	for i := range segs {
		seg := &segs[i]
		seconds := seg.Seconds(now)
		view.TotalSeconds += seconds
		if seg.Running() {
			view.IsRunning = true
		}
		if seg.StartedAt != nil && seg.StartedAt.After(lastSegmentAt) {
			lastSegmentAt = *seg.StartedAt
		}
		view.Segments = append(view.Segments, ledger.SegmentView{
			ID:              seg.ID,
			Kind:            seg.Kind,
			StartedAt:       seg.StartedAt,
			StoppedAt:       seg.StoppedAt,
			DurationSeconds: seconds,
			Running:         seg.Running(),
			Note:            seg.Note,
			Link:            seg.Link,
		})
	}

	view.LastSegmentAt = lastSegmentAt
	if lastSegmentAt.IsZero() {
		view.LastSegmentAt = entry.CreatedAt
	}

	return view
}

// groupByDay buckets views by the calendar date of LastSegmentAt and sums
// per-day totals. Days are ordered newest first, entries within a day by
// LastSegmentAt descending.
func groupByDay(views []ledger.EntryView) []ledger.DayGroup {
	buckets := map[string][]ledger.EntryView{}
	for _, v := range views {
		date := v.LastSegmentAt.UTC().Format(time.DateOnly)
		buckets[date] = append(buckets[date], v)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]ledger.DayGroup, 0, len(dates))
	for _, date := range dates {
		entries := buckets[date]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].LastSegmentAt.After(entries[j].LastSegmentAt)
		})

		var total int64
		for i := range entries {
			total += entries[i].TotalSeconds
		}

		groups = append(groups, ledger.DayGroup{
			Date:         date,
			TotalSeconds: total,
			Entries:      entries,
		})
	}

	return groups
}

func pickProject(id *string, projects map[string]*ledger.ProjectInfo) *ledger.ProjectInfo {
	if id == nil {
		return nil
	}
	return projects[*id]
}

func pickLabels(ids []string, labels map[string]ledger.Label) []ledger.Label {
	out := make([]ledger.Label, 0, len(ids))
	for _, id := range ids {
		if l, ok := labels[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
