package locationstore

import (
	"strconv"
	"strings"
	"time"

	"locshare/internal/domain"
)

// Header is the fixed first line of every encoded table.
const Header = "phoneNumber,latitude,longitude,timestamp"

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const fieldCount = 4

// Encode serializes records into the table format: the header line, one
// comma-joined line per record, and a trailing newline. Fields are not
// escaped; phone numbers must not contain commas.
func Encode(records []domain.LocationRecord) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.PhoneNumber)
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r.Latitude, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r.Longitude, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(r.Timestamp.UTC().Format(TimestampLayout))
	}
	b.WriteByte('\n')
	return b.String()
}

// Decode parses a table produced by Encode. The first line is always treated
// as the header and blank lines are ignored.
//
// Parsing is strict: a line without exactly four fields, with an empty phone
// number, a non-numeric coordinate or an unparsable timestamp is dropped and
// counted in skipped instead of yielding a partially filled record.
func Decode(blob string) (records []domain.LocationRecord, skipped int) {
	lines := strings.Split(blob, "\n")
	if len(lines) == 0 {
		return nil, 0
	}

	records = make([]domain.LocationRecord, 0, len(lines))
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, ok := decodeLine(line)
		if !ok {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped
}

func decodeLine(line string) (domain.LocationRecord, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount || fields[0] == "" {
		return domain.LocationRecord{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return domain.LocationRecord{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return domain.LocationRecord{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.LocationRecord{}, false
	}

	return domain.LocationRecord{
		PhoneNumber: fields[0],
		Latitude:    lat,
		Longitude:   lng,
		Timestamp:   ts.UTC(),
	}, true
}
