package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/tidwall/gjson"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

var csvHeader = []string{"id", "arrival", "burst", "priority"}

// parseCSV reads rows of id,arrival,burst,priority. A first row that does not start with a number
// is taken as a header.
func parseCSV(r io.Reader) ([]simulator.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var processes []simulator.Process
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if row == 0 && !startsWithNumber(record[0]) {
			continue
		}

		values := make([]int, len(record))
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: %s %q is not an integer", line, csvHeader[i], field)
			}
			values[i] = v
		}
		processes = append(processes, simulator.Process{
			ID:          values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
			Priority:    values[3],
		})
	}
	return processes, nil
}

func startsWithNumber(field string) bool {
	field = strings.TrimSpace(field)
	if field == "" {
		return false
	}
	c := field[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+'
}

// parseJSON reads an array of process objects, optionally selected from a larger document with
// a gjson path. Each object needs id and burstTime; arrivalTime and priority default to 0.
func parseJSON(data []byte, path string) ([]simulator.Process, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("input is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if path != "" {
		doc = doc.Get(path)
		if !doc.Exists() {
			return nil, fmt.Errorf("json path %q matched nothing", path)
		}
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of processes, got %s", doc.Type)
	}

	var (
		processes []simulator.Process
		parseErr  error
	)
	doc.ForEach(func(key, item gjson.Result) bool {
		p, err := processFromJSON(item)
		if err != nil {
			parseErr = fmt.Errorf("element %d: %w", key.Int(), err)
			return false
		}
		processes = append(processes, p)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return processes, nil
}

func processFromJSON(item gjson.Result) (simulator.Process, error) {
	if !item.IsObject() {
		return simulator.Process{}, fmt.Errorf("expected an object, got %s", item.Type)
	}
	id, err := intField(item, "id", true)
	if err != nil {
		return simulator.Process{}, err
	}
	burst, err := intField(item, "burstTime", true)
	if err != nil {
		return simulator.Process{}, err
	}
	arrival, err := intField(item, "arrivalTime", false)
	if err != nil {
		return simulator.Process{}, err
	}
	priority, err := intField(item, "priority", false)
	if err != nil {
		return simulator.Process{}, err
	}
	return simulator.Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: priority}, nil
}

func intField(item gjson.Result, name string, required bool) (int, error) {
	field := item.Get(name)
	if !field.Exists() {
		if required {
			return 0, fmt.Errorf("missing %s", name)
		}
		return 0, nil
	}
	if field.Type != gjson.Number || field.Num != math.Trunc(field.Num) {
		return 0, fmt.Errorf("%s must be an integer, got %s", name, field.Raw)
	}
	return int(field.Int()), nil
}

// readProcesses decodes r in the given format.
func readProcesses(r io.Reader, format, jsonPath string) ([]simulator.Process, error) {
	switch format {
	case formatCSV:
		return parseCSV(r)
	case formatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return parseJSON(data, jsonPath)
	}
	return nil, fmt.Errorf("unknown input format %q, want %s or %s", format, formatCSV, formatJSON)
}

// writeCSV writes processes in the format parseCSV reads, header included.
func writeCSV(w io.Writer, processes []simulator.Process) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range processes {
		row := []string{strconv.Itoa(p.ID), strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime), strconv.Itoa(p.Priority)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
