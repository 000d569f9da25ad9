// Package console reads validated player input and renders manifest views.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const clearSequence = "\033[2J\033[1;1H"

// MaxAnswer is the longest answer accepted, in bytes. Longer lines are
// discarded and the question is asked again.
const MaxAnswer = 4096

var errAnswerTooLong = errors.New("answer too long")

// Prompter asks questions on w and reads answers line by line from r.
// Invalid answers are re-prompted; the only error it returns is from the input
// stream, io.EOF included.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// NewPrompter builds a prompter. clear enables the ANSI clear-screen sequence
// and should only be set when out is a terminal.
func NewPrompter(r io.Reader, w io.Writer, clear bool) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w, clear: clear}
}

func (p *Prompter) Out() io.Writer { return p.out }

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(s string) {
	fmt.Fprintln(p.out, s)
}

// Clear wipes the screen when clearing is enabled.
func (p *Prompter) Clear() {
	if p.clear {
		io.WriteString(p.out, clearSequence)
	}
}

func (p *Prompter) line() (string, error) {
	for {
		s, err := p.readLine()
		if errors.Is(err, errAnswerTooLong) {
			p.Printf("  That answer is too long (max %d characters). Try again: ", MaxAnswer)
			continue
		}
		return s, err
	}
}

// readLine reads one line of any length. A line longer than MaxAnswer is
// drained up to its newline and reported as errAnswerTooLong.
func (p *Prompter) readLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := p.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if tooLong {
					return "", errAnswerTooLong
				}
				if len(buf) > 0 {
					return strings.TrimSpace(string(buf)), nil
				}
				return "", io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxAnswer {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errAnswerTooLong
	}
	return strings.TrimSpace(string(buf)), nil
}

// Text asks for a non-empty answer.
func (p *Prompter) Text(label string) (string, error) {
	p.Printf("  %s: ", label)
	for {
		s, err := p.line()
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		p.Printf("  This field cannot be blank. %s: ", label)
	}
}

// PositiveInt asks until the answer parses as an integer greater than zero.
func (p *Prompter) PositiveInt(label string) (int, error) {
	p.Printf("  %s: ", label)
	for {
		s, err := p.line()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n, nil
		}
		p.Printf("  Invalid number. Enter a positive integer: ")
	}
}

// NonNegativeFloat asks until the answer parses as a finite amount of zero or more.
func (p *Prompter) NonNegativeFloat(label string) (float64, error) {
	p.Printf("  %s: ", label)
	for {
		s, err := p.line()
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f, nil
		}
		p.Printf("  Invalid amount. Enter a valid cost: ")
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(label string) (bool, error) {
	p.Printf("  %s [y/n]: ", label)
	for {
		s, err := p.line()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Printf("  Please answer y or n: ")
	}
}

// Choice asks until the answer is one of valid, compared case-insensitively.
// The matching entry of valid is returned.
func (p *Prompter) Choice(label string, valid ...string) (string, error) {
	p.Printf("  %s: ", label)
	for {
		s, err := p.line()
		if err != nil {
			return "", err
		}
		for _, v := range valid {
			if strings.EqualFold(s, v) {
				return v, nil
			}
		}
		p.Printf("  Unknown option %q. Choose one of %s: ", s, strings.Join(valid, ", "))
	}
}

// Pause waits for the player to press enter.
func (p *Prompter) Pause() error {
	p.Println("")
	p.Println("        ──────────────────────────────────────────────")
	p.Println("                    PRESS ENTER TO CONTINUE")
	p.Println("        ──────────────────────────────────────────────")
	_, err := p.line()
	return err
}
