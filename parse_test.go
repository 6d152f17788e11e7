package archmap_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/archmap"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(lat, lon, name, comment string) archmap.Entry {
	return archmap.Entry{
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lon),
		Name:      name,
		Comment:   comment,
	}
}

func assertEntries(t *testing.T, want, got []archmap.Entry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "entry %d: want %+v, got %+v", i, want[i], got[i])
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want archmap.Entry
	}{
		{
			name: "full line with comment",
			line: `51.5074,-0.1278 "Alice" # London`,
			want: entry("51.5074", "-0.1278", "Alice", "London"),
		},
		{
			name: "space after comma and no comment",
			line: `40.7128, -74.0060 "Bob"`,
			want: entry("40.7128", "-74.0060", "Bob", ""),
		},
		{
			name: "integer coordinates",
			line: `10,20 "Carol" # somewhere`,
			want: entry("10", "20", "Carol", "somewhere"),
		},
		{
			name: "bare trailing point",
			line: `12.,-3. "Dave"`,
			want: entry("12", "-3", "Dave", ""),
		},
		{
			name: "plus sign",
			line: `+12.5,+3.25 "Eve"`,
			want: entry("12.5", "3.25", "Eve", ""),
		},
		{
			name: "whitespace around comma and line",
			line: "  48.8566 ,  2.3522   \"Frank\"   #   Paris  ",
			want: entry("48.8566", "2.3522", "Frank", "Paris"),
		},
		{
			name: "non-letter filler before name",
			line: `35.6895,139.6917 -- "Grace" # Tokyo`,
			want: entry("35.6895", "139.6917", "Grace", "Tokyo"),
		},
		{
			name: "name is trimmed",
			line: `1,2 "  Heidi  "`,
			want: entry("1", "2", "Heidi", ""),
		},
		{
			name: "name with punctuation and unicode",
			line: `59.3293,18.0686 "Åsa <a&b>" # Stockholm, Sweden`,
			want: entry("59.3293", "18.0686", "Åsa <a&b>", "Stockholm, Sweden"),
		},
		{
			name: "hash without comment text",
			line: `1,2 "Ivan" #`,
			want: entry("1", "2", "Ivan", ""),
		},
		{
			name: "comment keeps inner hashes and quotes",
			line: `1,2 "Judy" # #archlinux on "libera"`,
			want: entry("1", "2", "Judy", `#archlinux on "libera"`),
		},
		{
			name: "carriage return",
			line: "1,2 \"Ken\" # x\r",
			want: entry("1", "2", "Ken", "x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := archmap.ParseLine(tt.line)

			require.True(t, got.OK, "reason: %s", got.Reason)
			assert.Empty(t, got.Reason)
			assert.True(t, tt.want.Equal(got.Entry), "want %+v, got %+v", tt.want, got.Entry)
		})
	}
}

func TestParseLine_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "not an entry", line: "not,a,valid,line"},
		{name: "missing longitude", line: `51.5 "Alice"`},
		{name: "missing name", line: `51.5,-0.12 # London`},
		{name: "unterminated name", line: `51.5,-0.12 "Alice # London`},
		{name: "letters before name", line: `51.5,-0.12 x "Alice"`},
		{name: "trailing garbage after name", line: `51.5,-0.12 "Alice" London`},
		{name: "leading garbage", line: `lat 51.5,-0.12 "Alice"`},
		{name: "empty name", line: `51.5,-0.12 ""`},
		{name: "blank name", line: `51.5,-0.12 "   "`},
		{name: "exponent", line: `5e1,1 "Alice"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := archmap.ParseLine(tt.line)

			assert.False(t, got.OK)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestParseEntries(t *testing.T) {
	t.Parallel()

	t.Run("parses every valid line in order", func(t *testing.T) {
		t.Parallel()

		block := "51.5074,-0.1278 \"Alice\" # London\n40.7128, -74.0060 \"Bob\""

		got := archmap.ParseEntries(block)

		assert.Empty(t, got.Failures)
		assertEntries(t, []archmap.Entry{
			entry("51.5074", "-0.1278", "Alice", "London"),
			entry("40.7128", "-74.0060", "Bob", ""),
		}, got.Entries)
	})

	t.Run("reports malformed line with number and raw text", func(t *testing.T) {
		t.Parallel()

		got := archmap.ParseEntries("not,a,valid,line")

		assert.Empty(t, got.Entries)
		require.Len(t, got.Failures, 1)
		assert.Equal(t, 1, got.Failures[0].Line)
		assert.Equal(t, "not,a,valid,line", got.Failures[0].Text)
		assert.Contains(t, got.Failures[0].Error(), "line 1")
	})

	t.Run("isolates malformed lines", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			`garbage`,
			`1,1 "A"`,
			`2,2 "B" # b`,
			`oops "C"`,
			`3,3 "C"`,
			`4,4`,
			`5,5 "E" # e`,
		}

		got := archmap.ParseEntries(strings.Join(lines, "\n"))

		assertEntries(t, []archmap.Entry{
			entry("1", "1", "A", ""),
			entry("2", "2", "B", "b"),
			entry("3", "3", "C", ""),
			entry("5", "5", "E", "e"),
		}, got.Entries)
		require.Len(t, got.Failures, 3)
		assert.Equal(t, 1, got.Failures[0].Line)
		assert.Equal(t, 4, got.Failures[1].Line)
		assert.Equal(t, 6, got.Failures[2].Line)
		assert.Equal(t, `4,4`, got.Failures[2].Text)
	})

	t.Run("skips blank lines but keeps numbering", func(t *testing.T) {
		t.Parallel()

		got := archmap.ParseEntries("1,1 \"A\"\n\n   \nbad\n")

		require.Len(t, got.Entries, 1)
		require.Len(t, got.Failures, 1)
		assert.Equal(t, 4, got.Failures[0].Line)
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		t.Parallel()

		got := archmap.ParseEntries("1,1 \"A\" # a\r\n2,2 \"B\"\r\n")

		assert.Empty(t, got.Failures)
		assertEntries(t, []archmap.Entry{
			entry("1", "1", "A", "a"),
			entry("2", "2", "B", ""),
		}, got.Entries)
	})

	t.Run("keeps duplicate entries", func(t *testing.T) {
		t.Parallel()

		got := archmap.ParseEntries("1,1 \"A\"\n1,1 \"A\"")

		assert.Len(t, got.Entries, 2)
	})

	t.Run("empty block yields nothing", func(t *testing.T) {
		t.Parallel()

		got := archmap.ParseEntries("")

		assert.Empty(t, got.Entries)
		assert.Empty(t, got.Failures)
	})
}
