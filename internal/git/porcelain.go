package git

import (
	"bytes"
	"fmt"
	"strings"
)

// ParsePorcelainV2 parses the output of
// "git status --porcelain=v2 -z". Header ("#") and ignored ("!") records
// are skipped.
func ParsePorcelainV2(data []byte) ([]StatusEntry, error) {
	records := bytes.Split(data, []byte{0})

	var entries []StatusEntry
	for i := 0; i < len(records); i++ {
		rec := string(records[i])
		if rec == "" {
			continue
		}

		switch rec[0] {
		case '#', '!':
			continue

		case '?':
			entries = append(entries, StatusEntry{Path: strings.TrimPrefix(rec, "? "), Status: WorktreeNew})

		case '1':
			// 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
			fields := strings.SplitN(rec, " ", 9)
			if len(fields) != 9 {
				return nil, fmt.Errorf("malformed status record %q", rec)
			}
			s, err := parseXY(fields[1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, StatusEntry{Path: fields[8], Status: s})

		case '2':
			// 2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <X><score> <path>, then <origPath>
			fields := strings.SplitN(rec, " ", 10)
			if len(fields) != 10 {
				return nil, fmt.Errorf("malformed status record %q", rec)
			}
			s, err := parseXY(fields[1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, StatusEntry{Path: fields[9], Status: s})
			i++

		case 'u':
			// u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>
			fields := strings.SplitN(rec, " ", 11)
			if len(fields) != 11 {
				return nil, fmt.Errorf("malformed status record %q", rec)
			}
			entries = append(entries, StatusEntry{Path: fields[10], Status: Conflicted})

		default:
			return nil, fmt.Errorf("unknown status record %q", rec)
		}
	}
	return entries, nil
}

// parseXY converts the two-letter index/worktree code. "." means unchanged.
func parseXY(xy string) (Status, error) {
	if len(xy) != 2 {
		return 0, fmt.Errorf("malformed status code %q", xy)
	}

	var s Status
	switch xy[0] {
	case 'M':
		s |= IndexModified
	case 'T':
		s |= IndexTypeChange
	case 'A', 'C':
		s |= IndexNew
	case 'D':
		s |= IndexDeleted
	case 'R':
		s |= IndexRenamed
	}
	switch xy[1] {
	case 'M':
		s |= WorktreeModified
	case 'T':
		s |= WorktreeTypeChange
	case 'A':
		// intent-to-add
		s |= WorktreeNew
	case 'D':
		s |= WorktreeDeleted
	case 'R':
		s |= WorktreeRenamed
	}
	return s, nil
}
