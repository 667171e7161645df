package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := `id, arrival, burst, priority
# comment rows are ignored
1, 0, 5, 2
2, 1, 3, 1

3,2,8,-1
`
	procs, err := parseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []simulator.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: 3, ArrivalTime: 2, BurstTime: 8, Priority: -1},
	}, procs)

	headerless, err := parseCSV(strings.NewReader("4,0,1,0\n"))
	require.NoError(t, err)
	assert.Equal(t, []simulator.Process{{ID: 4, BurstTime: 1}}, headerless)
}

func TestParseCSVErrors(t *testing.T) {
	_, err := parseCSV(strings.NewReader("1,0,5\n"))
	assert.Error(t, err)

	_, err = parseCSV(strings.NewReader("id,arrival,burst,priority\n1,0,five,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `line 2: burst "five" is not an integer`)
}

func TestParseJSON(t *testing.T) {
	procs, err := parseJSON([]byte(`[{"id":1,"arrivalTime":0,"burstTime":4,"priority":2},{"id":2,"burstTime":1}]`), "")
	require.NoError(t, err)
	assert.Equal(t, []simulator.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 4, Priority: 2},
		{ID: 2, BurstTime: 1},
	}, procs)

	nested := []byte(`{"success":true,"data":{"processes":[{"id":9,"arrivalTime":3,"burstTime":2,"priority":0}]}}`)
	procs, err = parseJSON(nested, "data.processes")
	require.NoError(t, err)
	assert.Equal(t, []simulator.Process{{ID: 9, ArrivalTime: 3, BurstTime: 2}}, procs)
}

func TestParseJSONErrors(t *testing.T) {
	cases := map[string]struct {
		input string
		path  string
		want  string
	}{
		"invalid":       {input: `[{"id":1`, want: "not valid JSON"},
		"not an array":  {input: `{"id":1}`, want: "expected a JSON array"},
		"missing path":  {input: `{"a":[]}`, path: "b", want: `json path "b" matched nothing`},
		"missing id":    {input: `[{"burstTime":1}]`, want: "element 0: missing id"},
		"missing burst": {input: `[{"id":1}]`, want: "missing burstTime"},
		"fractional":    {input: `[{"id":1,"burstTime":1.5}]`, want: "burstTime must be an integer, got 1.5"},
		"string field":  {input: `[{"id":"1","burstTime":1}]`, want: "id must be an integer"},
		"not an object": {input: `[1]`, want: "expected an object"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseJSON([]byte(tc.input), tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestReadProcessesUnknownFormat(t *testing.T) {
	_, err := readProcesses(strings.NewReader(""), "yaml", "")
	assert.ErrorContains(t, err, `unknown input format "yaml"`)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	procs, err := simulator.Preset("sample")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, procs))
	assert.True(t, strings.HasPrefix(buf.String(), "id,arrival,burst,priority\n1,0,4,2\n"))

	parsed, err := parseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, procs, parsed)
}
