package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/fatih/color"
)

type Action int

const (
	ActionRun Action = iota
	ActionCancel
	ActionChangeWeights
	ActionChangeYears
	ActionChangeRegions
)

// ErrNoStatistics is returned when a configuration is requested for an empty store.
var ErrNoStatistics = errors.New("no statistics loaded")

// Prompter collects a report configuration from a user. Invalid answers are
// reported and asked again; only read errors end a prompt early.
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	warn *color.Color
	info *color.Color
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		warn: color.New(color.FgRed),
		info: color.New(color.FgBlue),
	}
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Weights asks for one percentage per statistic until they add up to 100.
func (p *Prompter) Weights(stats []string) (domain.Weights, error) {
	p.info.Fprintf(p.out, "There are %d report studies available for your report:\n\t%s\n",
		len(stats), strings.Join(stats, ", "))
	fmt.Fprintln(p.out, "Please enter one value for each study, each value represents "+
		"the percent out of 100% to be applied to the study values")

	for {
		raw := make(map[string]string, len(stats))
		for _, stat := range stats {
			answer, err := p.ask(stat + " %:")
			if err != nil {
				return nil, err
			}
			raw[stat] = answer
		}

		weights, err := report.ParseWeights(raw)
		if err == nil {
			return weights, nil
		}
		p.warn.Fprintf(p.out, "\n%v, please try again\n", err)
	}
}

// Years asks for a start and an end year inside bounds.
func (p *Prompter) Years(bounds domain.YearRange) (domain.YearRange, error) {
	fmt.Fprintf(p.out, "\nPlease enter a start year and an end year between %d and %d (inclusive)\n",
		bounds.Start, bounds.End)

	for {
		start, err := p.ask("Report start year:")
		if err != nil {
			return domain.YearRange{}, err
		}
		end, err := p.ask("Report end year:")
		if err != nil {
			return domain.YearRange{}, err
		}

		years, err := report.ParseYearRange(start, end, bounds)
		if err == nil {
			return years, nil
		}
		p.warn.Fprintf(p.out, "\n%v, please try again\n", err)
	}
}

// Regions asks for a comma separated list of known region codes.
func (p *Prompter) Regions(known []string) ([]string, error) {
	fmt.Fprintln(p.out, "\nNow choose the region or regions to report on.")
	fmt.Fprintln(p.out, "Please enter one or more of the following region codes, separated by commas:")
	fmt.Fprintln(p.out, strings.Join(known, ","))

	for {
		answer, err := p.ask("Report region(s):")
		if err != nil {
			return nil, err
		}

		regions, err := report.ParseRegions(answer, known)
		if err == nil {
			return regions, nil
		}
		p.warn.Fprintf(p.out, "\n%v, please try again\n", err)
	}
}

// Configure runs a full configuration round against store.
func (p *Prompter) Configure(store domain.Store, averaging domain.AveragingMode) (domain.ReportConfig, error) {
	bounds, ok := store.YearBounds()
	if !ok {
		return domain.ReportConfig{}, ErrNoStatistics
	}

	fmt.Fprintln(p.out, "Next step is to configure your report")
	weights, err := p.Weights(store.StatCodes())
	if err != nil {
		return domain.ReportConfig{}, err
	}
	years, err := p.Years(bounds)
	if err != nil {
		return domain.ReportConfig{}, err
	}
	regions, err := p.Regions(store.Regions())
	if err != nil {
		return domain.ReportConfig{}, err
	}

	return domain.ReportConfig{
		Weights:   weights,
		Years:     years,
		Regions:   regions,
		Averaging: averaging,
	}, nil
}

// Confirm shows cfg and reads the next action. Any key other than C, W, Y or R runs the report.
func (p *Prompter) Confirm(cfg domain.ReportConfig) (Action, error) {
	fmt.Fprintln(p.out, "\nPlease confirm your report configuration.")
	fmt.Fprintf(p.out, "\tWeights: %s\n", formatWeights(cfg.Weights))
	fmt.Fprintf(p.out, "\tYears: %d to %d\n", cfg.Years.Start, cfg.Years.End)
	fmt.Fprintf(p.out, "\tRegions: %s\n", strings.Join(cfg.Regions, ","))
	p.info.Fprintln(p.out, `Press "C" to CANCEL the report, "W" to change Weights, "Y" to change Years, "R" to change Regions`)

	answer, err := p.ask("Otherwise press Enter to run the report")
	if err != nil {
		return ActionCancel, err
	}

	switch strings.ToUpper(answer) {
	case "C":
		return ActionCancel, nil
	case "W":
		return ActionChangeWeights, nil
	case "Y":
		return ActionChangeYears, nil
	case "R":
		return ActionChangeRegions, nil
	default:
		return ActionRun, nil
	}
}

// Revise asks again for the part of cfg selected by action and returns the new configuration.
func (p *Prompter) Revise(cfg domain.ReportConfig, action Action, store domain.Store) (domain.ReportConfig, error) {
	next := domain.ReportConfig{
		Weights:   cfg.Weights,
		Years:     cfg.Years,
		Regions:   cfg.Regions,
		Averaging: cfg.Averaging,
	}

	var err error
	switch action {
	case ActionChangeWeights:
		next.Weights, err = p.Weights(store.StatCodes())
	case ActionChangeYears:
		bounds, ok := store.YearBounds()
		if !ok {
			return cfg, ErrNoStatistics
		}
		next.Years, err = p.Years(bounds)
	case ActionChangeRegions:
		next.Regions, err = p.Regions(store.Regions())
	}
	if err != nil {
		return cfg, err
	}
	return next, nil
}

func formatWeights(weights domain.Weights) string {
	parts := make([]string, 0, len(weights))
	for _, stat := range sortedKeys(weights) {
		parts = append(parts, fmt.Sprintf("%s: %d%%", stat, weights[stat]))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(weights domain.Weights) []string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
