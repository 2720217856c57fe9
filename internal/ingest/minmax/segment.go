package minmax

import (
	"strconv"
	"strings"
)

// restLabels are label-column values that mark rest days. They never start
// a day group.
var restLabels = map[string]bool{
	"1-2 Rest Days": true,
	"Rest Day":      true,
	"Rest Days":     true,
}

// weekBlock is a contiguous run of data rows belonging to one "Week N"
// header. Week numbers are taken verbatim from the sheet and need not be
// contiguous or sorted.
type weekBlock struct {
	number int
	start  int // first data row after the header
	end    int // exclusive
}

// dayGroup is a named day within a week block and the data rows holding its
// exercises.
type dayGroup struct {
	name string
	rows []int
}

// weekNumber parses a "Week N" header label.
func weekNumber(label string) (int, bool) {
	if !strings.HasPrefix(label, "Week ") {
		return 0, false
	}
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// findWeeks scans the label column and partitions the data rows into week
// blocks, in encounter order.
func findWeeks(labels []string) []weekBlock {
	type header struct {
		number int
		row    int
	}
	var headers []header
	for i, v := range labels {
		if n, ok := weekNumber(v); ok {
			headers = append(headers, header{number: n, row: i})
		}
	}

	blocks := make([]weekBlock, 0, len(headers))
	for i, h := range headers {
		end := len(labels)
		if i+1 < len(headers) {
			end = headers[i+1].row
		}
		blocks = append(blocks, weekBlock{number: h.number, start: h.row + 1, end: end})
	}
	return blocks
}

// parseDays groups the rows of one week block into named days. A non-empty
// label that is neither a week header nor a rest label starts a new group;
// every row with a non-blank exercise name feeds the current group. The same
// row may both open a group and contribute an exercise. Groups that collect
// no exercise rows are dropped.
func parseDays(labels, names []string, start, end int) []dayGroup {
	var groups []dayGroup
	var current string
	var rows []int

	for i := start; i < end; i++ {
		label := labels[i]
		if label != "" && !restLabels[label] && !strings.HasPrefix(label, "Week") {
			if current != "" && len(rows) > 0 {
				groups = append(groups, dayGroup{name: current, rows: rows})
			}
			current = label
			rows = nil
		}

		if strings.TrimSpace(names[i]) != "" {
			rows = append(rows, i)
		}
	}

	if current != "" && len(rows) > 0 {
		groups = append(groups, dayGroup{name: current, rows: rows})
	}
	return groups
}
