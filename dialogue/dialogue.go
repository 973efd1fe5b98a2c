package dialogue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"PictureToAscii/structs"
)

// ShowSourceFileSelection prompts the user to select from discovered BMP files.
func ShowSourceFileSelection(in io.Reader, out io.Writer, bmpFiles []string) ([]string, error) {
	if len(bmpFiles) == 0 {
		return []string{}, nil
	}

	fmt.Fprintln(out, "\nAvailable bitmap files:")
	for i, file := range bmpFiles {
		fmt.Fprintf(out, "%d. %s\n", i+1, file)
	}
	fmt.Fprint(out, "\nSelect file(s) to add (e.g., 1,3,4), or press Enter for all: ")

	indexes, err := readSelection(in, len(bmpFiles))
	if err != nil {
		return nil, err
	}
	if indexes == nil {
		return bmpFiles, nil
	}

	selected := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		selected = append(selected, bmpFiles[idx])
	}
	return selected, nil
}

// ShowConversionSelection prompts the user to select from configured conversions.
func ShowConversionSelection(in io.Reader, out io.Writer, jobs []structs.Conversion) ([]structs.Conversion, error) {
	if len(jobs) == 0 {
		return []structs.Conversion{}, nil
	}

	fmt.Fprintln(out, "\nConfigured conversions:")
	for i, job := range jobs {
		fmt.Fprintf(out, "%d. %s (%s -> %s)\n", i+1, job.GetName(), job.Source, job.Output)
	}
	fmt.Fprint(out, "\nSelect conversion(s) to run (e.g., 1,3,4), or press Enter for all: ")

	indexes, err := readSelection(in, len(jobs))
	if err != nil {
		return nil, err
	}
	if indexes == nil {
		return jobs, nil
	}

	selected := make([]structs.Conversion, 0, len(indexes))
	for _, idx := range indexes {
		selected = append(selected, jobs[idx])
	}
	return selected, nil
}

// readSelection reads one line of comma separated 1-based choices and returns
// unique 0-based indexes in input order. An empty line selects everything and
// yields nil.
func readSelection(in io.Reader, count int) ([]int, error) {
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseSelection(input, count)
}

// ParseSelection parses input such as "1, 3,4" against count choices.
func ParseSelection(input string, count int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var indexes []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmedPart)
		if err != nil || idx < 1 || idx > count {
			return nil, fmt.Errorf("invalid selection '%s': please enter numbers between 1 and %d, separated by commas", trimmedPart, count)
		}
		if !seen[idx] {
			seen[idx] = true
			indexes = append(indexes, idx-1)
		}
	}
	if len(indexes) == 0 {
		return nil, fmt.Errorf("invalid selection '%s': no numbers given", input)
	}
	return indexes, nil
}
