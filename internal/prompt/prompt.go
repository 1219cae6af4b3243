// Package prompt asks the user for the city, month and day selectors and
// re-prompts until each answer is valid
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"BikeShare/internal/config"
	"BikeShare/internal/dataset"
)

// Banner opens every iteration
const Banner = "Hello! Let's explore some US bikeshare data!"

// Separator follows the accepted day answer
var Separator = strings.Repeat("-", 40)

const (
	cityQuestion    = "Enter name of the city to analyze (chicago, new york city, washington):"
	monthQuestion   = "Enter month to filter by, or \"all\" to apply no month filter:"
	dayQuestion     = "Enter an integer to represent day of week to filter by (1 = Monday ... 7 = Sunday), or \"0\" to apply no day filter:"
	restartQuestion = "\nWould you like to restart? Enter yes or no."
)

// Prompter reads answers line by line from in and writes questions to out
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the next line. io.EOF means input is closed
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// City asks until the answer is a supported city
func (p *Prompter) City() (string, error) {
	for {
		line, err := p.ask(cityQuestion)
		if err != nil {
			return "", err
		}
		city := strings.ToLower(strings.TrimSpace(line))
		if config.IsCity(city) {
			return city, nil
		}
	}
}

// Month asks until the answer is a month name or "all"
func (p *Prompter) Month() (string, error) {
	for {
		line, err := p.ask(monthQuestion)
		if err != nil {
			return "", err
		}
		month := strings.ToLower(strings.TrimSpace(line))
		if config.IsMonthSelector(month) {
			return month, nil
		}
	}
}

// Day asks until the answer is an integer in [0, 7]. Only integer parse
// failures are retried; any other error is returned
func (p *Prompter) Day() (int, error) {
	for {
		line, err := p.ask(dayQuestion)
		if err != nil {
			return 0, err
		}
		day, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				continue
			}
			return 0, err
		}
		if config.IsDaySelector(day) {
			return day, nil
		}
	}
}

// Filters prints the banner and collects city, month and day in that order
func (p *Prompter) Filters() (dataset.Selection, error) {
	fmt.Fprintln(p.out, Banner)

	city, err := p.City()
	if err != nil {
		return dataset.Selection{}, err
	}
	month, err := p.Month()
	if err != nil {
		return dataset.Selection{}, err
	}
	day, err := p.Day()
	if err != nil {
		return dataset.Selection{}, err
	}

	fmt.Fprintln(p.out, Separator)
	return dataset.Selection{City: city, Month: month, Day: day}, nil
}

// Restart asks whether to run again. Only "yes", in any case, restarts
func (p *Prompter) Restart() (bool, error) {
	line, err := p.ask(restartQuestion)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
