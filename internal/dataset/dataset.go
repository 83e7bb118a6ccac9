// Package dataset reads and writes the pipeline's file formats: the labeled
// training CSV, the job description CSV, annotator rankings, and the JSONL
// result files shared between distillation, inference, and fine-tuning.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TrainRow is one labeled resume/job-description pair from the training CSV.
type TrainRow struct {
	ResumeText         string
	JobDescriptionText string
	Label              string
}

// LoadTrain reads the training CSV. Required columns: resume_text,
// job_description_text, label.
func LoadTrain(path string) ([]TrainRow, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	resumeCol, err := column(header, "resume_text", path)
	if err != nil {
		return nil, err
	}
	jdCol, err := column(header, "job_description_text", path)
	if err != nil {
		return nil, err
	}
	labelCol, err := column(header, "label", path)
	if err != nil {
		return nil, err
	}

	rows := make([]TrainRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, TrainRow{
			ResumeText:         rec[resumeCol],
			JobDescriptionText: rec[jdCol],
			Label:              rec[labelCol],
		})
	}
	return rows, nil
}

// LoadJobDescriptions reads the job description CSV. Required column:
// job_description.
func LoadJobDescriptions(path string) ([]string, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	jdCol, err := column(header, "job_description", path)
	if err != nil {
		return nil, err
	}

	jds := make([]string, 0, len(records))
	for _, rec := range records {
		jds = append(jds, rec[jdCol])
	}
	return jds, nil
}

// LoadAnnotations reads annotator rankings from a JSON file. Only keys
// starting with "ranklist_" count; anything else in the file is ignored.
func LoadAnnotations(path string) (map[string][][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse annotations: %w", err)
	}

	rankings := make(map[string][][]int)
	for key, value := range raw {
		if !strings.HasPrefix(key, "ranklist_") {
			continue
		}
		var lists [][]int
		if err := json.Unmarshal(value, &lists); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", key, err)
		}
		rankings[key] = lists
	}
	return rankings, nil
}

func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}
	return records[1:], records[0], nil
}

func column(header []string, name, path string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("missing column %q in %s", name, path)
}
