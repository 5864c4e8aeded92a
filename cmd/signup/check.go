package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jask/signup/internal/form"
	"github.com/jask/signup/internal/service"
)

type checkOptions struct {
	values map[form.FieldID]string
	commit bool
	reveal bool
}

func newCheckCmd(e *env) *cobra.Command {
	var (
		opts = checkOptions{values: make(map[form.FieldID]string)}
		raw  [len(form.Fields)]string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate values without the UI and print the form state as YAML",
		Long: `check feeds the given values through a form session, optionally committing
every field in order, and prints the resulting state. It exits non-zero when the
form would not submit.

Example:
  signup check --username alice --email alice@example.com \
    --password Secret123 --repeat Secret123 --commit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, id := range form.Fields {
				opts.values[id] = raw[i]
			}
			return runCheck(cmd.OutOrStdout(), e.sessions, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&raw[0], "username", "", "username value")
	flags.StringVar(&raw[1], "email", "", "email value")
	flags.StringVar(&raw[2], "password", "", "password value")
	flags.StringVar(&raw[3], "repeat", "", "repeated password value")
	flags.BoolVar(&opts.commit, "commit", false, "commit every field in order before reporting")
	flags.BoolVar(&opts.reveal, "reveal", false, "print password values instead of masking them")
	return cmd
}

type fieldReport struct {
	Name    string `yaml:"name"`
	Value   string `yaml:"value"`
	Valid   bool   `yaml:"valid"`
	Visible bool   `yaml:"visible"`
	Message string `yaml:"message,omitempty"`
}

type checkReport struct {
	Session    string        `yaml:"session"`
	Policy     string        `yaml:"policy"`
	Focus      string        `yaml:"focus"`
	FormValid  bool          `yaml:"form_valid"`
	Fields     []fieldReport `yaml:"fields"`
	Suggestion string        `yaml:"suggestion,omitempty"`
	Invalid    []string      `yaml:"invalid,omitempty"`
}

func runCheck(w io.Writer, sessions *service.SessionService, opts checkOptions) error {
	sess, err := sessions.Open()
	if err != nil {
		return err
	}
	defer func() { _ = sessions.Close(sess.ID()) }()

	for _, id := range form.Fields {
		if opts.commit {
			sess.OnFocusChanged(id)
		}
		sess.OnTextChanged(id, opts.values[id])
		if opts.commit {
			sess.OnCommit()
		}
	}

	snap := sess.Snapshot()
	report := checkReport{
		Session:    snap.ID.String(),
		Policy:     snap.Policy.String(),
		Focus:      snap.Focus.String(),
		FormValid:  snap.FormValid,
		Suggestion: snap.Suggestion,
	}
	for _, id := range form.Fields {
		value := snap.Values[id]
		if id.Secret() && !opts.reveal {
			value = strings.Repeat("*", utf8.RuneCountInString(value))
		}
		report.Fields = append(report.Fields, fieldReport{
			Name:    id.String(),
			Value:   value,
			Valid:   snap.Validity[id],
			Visible: snap.Visible[id],
			Message: snap.Messages[id],
		})
	}

	_, submitErr := sess.SubmitForm()
	var invalid []string
	if submitErr != nil {
		for _, id := range sess.Validity().Invalid() {
			invalid = append(invalid, id.String())
		}
		report.Invalid = invalid
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return submitErr
}
