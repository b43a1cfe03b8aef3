package cli

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/matzehuels/surepatch/pkg/dispatch"
)

// askOne is replaced in tests.
var askOne = survey.AskOne

// surveyPrompter asks questions on the terminal.
type surveyPrompter struct{}

var _ dispatch.Prompter = (*surveyPrompter)(nil)

func newSurveyPrompter() *surveyPrompter {
	return &surveyPrompter{}
}

// Confirm asks a yes/no question. The default answer is no.
func (p *surveyPrompter) Confirm(message string) (bool, error) {
	var answer bool
	err := askOne(&survey.Confirm{Message: message, Default: false}, &answer)
	return answer, err
}

// Input asks for a line of text.
func (p *surveyPrompter) Input(message string) (string, error) {
	var answer string
	if err := askOne(&survey.Input{Message: message}, &answer); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Password asks for a secret without echoing it.
func (p *surveyPrompter) Password(message string) (string, error) {
	var answer string
	err := askOne(&survey.Password{Message: message}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}
