package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/event-finder/internal/sites"
)

// runMenu drives the interactive loop: banner, category prompt,
// scrape, continue prompt, until the user quits or input runs out.
func runMenu(in io.Reader, out io.Writer, sc *scraper) error {
	fmt.Fprintf(out, "Welcome to the Event Finder!\n\n")

	now := time.Now()
	fmt.Fprintf(out, "Today's date is %d-%d-%d\n", now.Year(), int(now.Month()), now.Day())
	fmt.Fprintf(out, "Current time is %d:%d:%d\n\n", now.Hour(), now.Minute(), now.Second())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "Please choose an event type:")
		fmt.Fprintln(out, "1: Music")
		fmt.Fprintln(out, "2: Unique")
		fmt.Fprintln(out, "3: General")
		fmt.Fprintln(out, "4: All")
		fmt.Fprintln(out, "5: Quit")

		line, ok := readLine(scanner)
		if !ok {
			return nil
		}

		if isQuit(line) {
			fmt.Fprintln(out, "Exiting the Event Finder.")
			return nil
		}

		category, err := sites.ParseCategory(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a number (1-4) or event type.")
		} else {
			fmt.Fprintf(out, "Fetching %s events...\n", category)
			events, err := sc.scrape(category)
			if err != nil {
				return err
			}
			writeEvents(out, events)
		}

		// The original asks this even after invalid input.
		cont, ok := askContinue(scanner, out)
		if !ok || !cont {
			fmt.Fprintln(out, "Thank you for using the Event Finder!")
			return nil
		}
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "5", "quit":
		return true
	}
	return false
}

// askContinue prompts until it gets an answer it understands. The
// second return value is false when input is exhausted.
func askContinue(scanner *bufio.Scanner, out io.Writer) (bool, bool) {
	for {
		fmt.Fprintln(out, "\nWould you like to choose another option? (yes/no)")

		line, ok := readLine(scanner)
		if !ok {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, true
		case "no", "n":
			return false, true
		default:
			fmt.Fprintln(out, "Invalid input. Please enter 'yes' or 'no'.")
		}
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
