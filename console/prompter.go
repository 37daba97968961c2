package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/utils"
)

const invalidInputMessage = "\n\tInvalid input!  Please try again.\n\n"

var YesNo = []string{"yes", "no"}

// Prompter reads answers line by line from reader and writes prompts to writer
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// CheckInput asks for input using prompt until the lowercased answer is one of validInputs.
// io.EOF is returned if the input is closed before a valid answer is given
func (p *Prompter) CheckInput(prompt string, validInputs []string) (string, error) {
	for {
		_, err := fmt.Fprint(p.writer, prompt)
		if err != nil {
			return "", err
		}

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		userInput := strings.ToLower(strings.TrimSpace(line))
		if utils.ContainsString(userInput, validInputs) {
			return userInput, nil
		}

		log.Debugf("[method: CheckInput] invalid input of %v bytes, valid inputs: %v", len(userInput), validInputs)
		_, err = fmt.Fprint(p.writer, invalidInputMessage)
		if err != nil {
			return "", err
		}
	}
}

// readLine returns the next line without length limit. A last line without
// newline is returned as is, io.EOF only once nothing is left
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// Confirm asks a yes/no question and returns true if the answer is yes
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.CheckInput(prompt, YesNo)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// Println writes a line to the prompter output
func (p *Prompter) Println(a ...any) {
	_, _ = fmt.Fprintln(p.writer, a...)
}
