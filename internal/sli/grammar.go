package sli

import (
	"regexp"
	"strings"
)

// linePattern matches: <date> <time> [<STATUS>] (ATM<digits> )?<TOKEN><rest>
var linePattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}) (\d{2}:\d{2}:\d{2}) \[(SUCCESS|ERROR)\] (?:ATM\d+ )?([A-Z_]+)(.*)$`,
)

// separatorPrefix marks decorative lines that are never fed to the matcher.
const separatorPrefix = "---"

// ShouldIgnore reports whether a line is blank or a separator. Ignored lines
// are not matched and do not count as skipped.
func ShouldIgnore(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, separatorPrefix)
}

// Match decomposes a raw line into a LogRecord. The second return value is
// false when the line does not follow the grammar; Match never fails otherwise.
func Match(line string) (LogRecord, bool) {
	line = strings.TrimSpace(line)

	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return LogRecord{}, false
	}

	status := Status(m[3])
	rec := LogRecord{
		Date:        m[1],
		Time:        m[2],
		Status:      status,
		DetailToken: m[4],
		Remainder:   remainderAfterStatus(line, status),
	}
	return rec, true
}

// remainderAfterStatus returns the text between the first "[STATUS]" marker
// and the next one (or the end of the line), trimmed.
func remainderAfterStatus(line string, status Status) string {
	parts := strings.Split(line, "["+string(status)+"]")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
