package formatter

import (
	"fmt"
	"time"
)

// timeSegment is either literal text or one strftime directive
// translated to a Go reference layout. frac > 0 renders that many
// digits of the sub-second part instead.
type timeSegment struct {
	literal string
	layout  string
	frac    int
}

var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'z': "-0700",
	'Z': "MST",
}

// defaultClock renders "2006-01-02 15:04:05,000" for an empty date format
var defaultClock = []timeSegment{
	{layout: "2006-01-02 15:04:05"},
	{literal: ","},
	{frac: 3},
}

func parseDateFormat(dateFormat string) ([]timeSegment, error) {
	if dateFormat == "" {
		return defaultClock, nil
	}

	var (
		clock []timeSegment
		lit   []byte
	)
	flush := func() {
		if len(lit) > 0 {
			clock = append(clock, timeSegment{literal: string(lit)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(dateFormat); i++ {
		c := dateFormat[i]
		if c != '%' {
			lit = append(lit, c)
			continue
		}
		if i+1 >= len(dateFormat) {
			return nil, fmt.Errorf("datefmt %q: dangling %% at offset %d", dateFormat, i)
		}
		i++
		d := dateFormat[i]
		switch d {
		case '%':
			lit = append(lit, '%')
		case 'f':
			flush()
			clock = append(clock, timeSegment{frac: 6})
		default:
			layout, ok := directives[d]
			if !ok {
				return nil, fmt.Errorf("datefmt %q: unsupported directive %%%c", dateFormat, d)
			}
			flush()
			clock = append(clock, timeSegment{layout: layout})
		}
	}
	flush()
	return clock, nil
}

func (t *Template) appendTime(dst []byte, tm time.Time) []byte {
	for _, s := range t.clock {
		switch {
		case s.layout != "":
			dst = tm.AppendFormat(dst, s.layout)
		case s.frac > 0:
			dst = appendFraction(dst, tm.Nanosecond(), s.frac)
		default:
			dst = append(dst, s.literal...)
		}
	}
	return dst
}

// appendFraction appends the leading digits of a nanosecond count, zero padded
func appendFraction(dst []byte, nanos, digits int) []byte {
	for d := 9; d > digits; d-- {
		nanos /= 10
	}
	var buf [9]byte
	for i := digits - 1; i >= 0; i-- {
		buf[i] = byte('0' + nanos%10)
		nanos /= 10
	}
	return append(dst, buf[:digits]...)
}
