/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/redhat-data-and-ai/profilemanager/pkg/logger"
	"github.com/redhat-data-and-ai/profilemanager/pkg/serializer"
	"github.com/redhat-data-and-ai/profilemanager/pkg/store"
)

const menuText = `
=== Profile Manager CLI ===
1) Create profile
2) View profile (by id)
3) List profiles
4) Delete profile
5) Add hobby
6) Remove hobby
7) Save to file
8) Load from file
9) Edit profile
0) Exit
`

// Menu is the interactive front end over a profile store
// It only does input and output; every change goes through the store or the serializer.
type Menu struct {
	store       store.ProfileStoreInterface
	in          *bufio.Reader
	out         io.Writer
	defaultPath string
	autoSave    bool
}

// Option configures a Menu
type Option func(*Menu)

// WithDefaultPath sets the file used when a save or load prompt is left blank
func WithDefaultPath(path string) Option {
	return func(m *Menu) {
		m.defaultPath = path
	}
}

// WithAutoSave saves to the default path when the menu exits
func WithAutoSave(enabled bool) Option {
	return func(m *Menu) {
		m.autoSave = enabled
	}
}

// NewMenu creates a menu that reads answers from in and writes prompts to out
func NewMenu(s store.ProfileStoreInterface, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store: s,
		in:    bufio.NewReader(in),
		out:   out,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	log := logger.Logger(ctx)
	log.Debug("starting profile menu")

	for {
		m.printf("%s", menuText)
		choice, err := m.readInt("Select option: ")
		if err != nil {
			return m.finish(ctx, err)
		}

		switch choice {
		case 1:
			err = m.createProfile(ctx)
		case 2:
			err = m.viewProfile()
		case 3:
			m.listProfiles()
		case 4:
			err = m.deleteProfile(ctx)
		case 5:
			err = m.addHobby(ctx)
		case 6:
			err = m.removeHobby(ctx)
		case 7:
			err = m.saveToFile(ctx)
		case 8:
			err = m.loadFromFile(ctx)
		case 9:
			err = m.editProfile(ctx)
		case 0:
			m.printf("Goodbye.\n")
			return m.finish(ctx, nil)
		default:
			m.printf("Invalid choice. Try again.\n")
		}

		if err != nil {
			return m.finish(ctx, err)
		}
	}
}

// finish runs the exit path; running out of input counts as a normal exit
func (m *Menu) finish(ctx context.Context, err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Logger(ctx).WithError(err).Error("profile menu stopped")
		return err
	}

	if m.autoSave && m.defaultPath != "" {
		if saveErr := serializer.Save(ctx, m.store, m.defaultPath); saveErr != nil {
			m.printf("Failed to save to %s\n", m.defaultPath)
			return fmt.Errorf("failed to auto-save profiles: %w", saveErr)
		}
		m.printf("Saved to %s\n", m.defaultPath)
	}
	return nil
}

func (m *Menu) createProfile(ctx context.Context) error {
	name, err := m.readLine("Name: ")
	if err != nil {
		return err
	}
	age, err := m.readInt("Age: ")
	if err != nil {
		return err
	}
	city, err := m.readLine("City: ")
	if err != nil {
		return err
	}
	country, err := m.readLine("Country: ")
	if err != nil {
		return err
	}

	id := m.store.Create(name, age, city, country)
	logger.Logger(ctx).WithField("id", id).Info("created profile")
	m.printf("Created profile with id: %d\n", id)
	return nil
}

func (m *Menu) viewProfile() error {
	id, err := m.readInt("Enter profile id: ")
	if err != nil {
		return err
	}

	p, ok := m.store.Find(id)
	if !ok {
		m.printf("No profile found with ID: %d.\n", id)
		return nil
	}
	m.printf("\n%s", p.String())
	return nil
}

func (m *Menu) listProfiles() {
	ids := m.store.ListIDs()
	if len(ids) == 0 {
		m.printf("No profiles yet.\n")
		return
	}

	m.printf("Profiles (%d):\n", m.store.Size())
	for _, id := range ids {
		if p, ok := m.store.Find(id); ok {
			m.printf("- [%d] %s\n", p.ID(), p.Name())
		}
	}
}

func (m *Menu) deleteProfile(ctx context.Context) error {
	id, err := m.readInt("Enter profile id to delete: ")
	if err != nil {
		return err
	}

	if !m.store.Remove(id) {
		m.printf("No profile found with ID %d.\n", id)
		return nil
	}
	logger.Logger(ctx).WithField("id", id).Info("deleted profile")
	m.printf("Deleted profile %d\n", id)
	return nil
}

func (m *Menu) addHobby(ctx context.Context) error {
	id, err := m.readInt("Enter profile id: ")
	if err != nil {
		return err
	}
	p, ok := m.store.Find(id)
	if !ok {
		m.printf("No profile found with ID: %d.\n", id)
		return nil
	}

	hobby, err := m.readLine("Hobby to add: ")
	if err != nil {
		return err
	}
	if hobby == "" {
		m.printf("Hobby must not be empty.\n")
		return nil
	}

	p.AddHobby(hobby)
	logger.Logger(ctx).WithField("id", id).Debug("added hobby")
	m.printf("Hobby added.\n")
	return nil
}

func (m *Menu) removeHobby(ctx context.Context) error {
	id, err := m.readInt("Enter profile id: ")
	if err != nil {
		return err
	}
	p, ok := m.store.Find(id)
	if !ok {
		m.printf("No profile found with ID: %d.\n", id)
		return nil
	}

	hobby, err := m.readLine("Hobby to remove: ")
	if err != nil {
		return err
	}
	if !p.RemoveHobby(hobby) {
		m.printf("Hobby not found.\n")
		return nil
	}
	logger.Logger(ctx).WithField("id", id).Debug("removed hobby")
	m.printf("Hobby removed.\n")
	return nil
}

func (m *Menu) editProfile(ctx context.Context) error {
	id, err := m.readInt("Enter profile id: ")
	if err != nil {
		return err
	}
	p, ok := m.store.Find(id)
	if !ok {
		m.printf("No profile found with ID: %d.\n", id)
		return nil
	}

	name, err := m.readLine(fmt.Sprintf("Name [%s]: ", p.Name()))
	if err != nil {
		return err
	}
	age, hasAge, err := m.readOptionalInt(fmt.Sprintf("Age [%d]: ", p.Age()))
	if err != nil {
		return err
	}
	city, err := m.readLine(fmt.Sprintf("City [%s]: ", p.City()))
	if err != nil {
		return err
	}
	country, err := m.readLine(fmt.Sprintf("Country [%s]: ", p.Country()))
	if err != nil {
		return err
	}

	// blank answers keep the current value; the setters reject empty strings
	p.SetName(name)
	if hasAge {
		p.SetAge(age)
	}
	p.SetCity(city)
	p.SetCountry(country)

	logger.Logger(ctx).WithField("id", id).Info("updated profile")
	m.printf("Profile updated.\n")
	return nil
}

func (m *Menu) saveToFile(ctx context.Context) error {
	path, err := m.readPath("save")
	if err != nil || path == "" {
		return err
	}

	if err := serializer.Save(ctx, m.store, path); err != nil {
		m.printf("Failed to save to %s\n", path)
		return nil
	}
	m.printf("Saved to %s\n", path)
	return nil
}

func (m *Menu) loadFromFile(ctx context.Context) error {
	path, err := m.readPath("load")
	if err != nil || path == "" {
		return err
	}

	summary, err := serializer.Load(ctx, m.store, path)
	if err != nil {
		m.printf("Failed to load from %s (missing file or invalid format)\n", path)
		return nil
	}

	m.printf("Loaded from %s\n", path)
	if skipped := summary.Skipped(); skipped > 0 {
		m.printf("%d profiles loaded, %d lines skipped (%d malformed, %d duplicate ids)\n",
			summary.Loaded, skipped, summary.Malformed, summary.Duplicates)
	}
	return nil
}

// readPath asks for a file path, falling back to the default path on a blank answer
func (m *Menu) readPath(action string) (string, error) {
	prompt := fmt.Sprintf("Enter file path to %s (ex: profiles.txt) ", action)
	if m.defaultPath != "" {
		prompt = fmt.Sprintf("Enter file path to %s [%s] ", action, m.defaultPath)
	}

	path, err := m.readLine(prompt)
	if err != nil {
		return "", err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = m.defaultPath
	}
	if path == "" {
		m.printf("No file path given.\n")
	}
	return path, nil
}

// readInt prompts until the user enters a whole number
func (m *Menu) readInt(prompt string) (int, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if v, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil {
			return v, nil
		}
		m.printf("Invalid number, Try again.\n")
	}
}

// readOptionalInt is readInt that also accepts a blank answer
func (m *Menu) readOptionalInt(prompt string) (int, bool, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false, nil
		}
		if v, convErr := strconv.Atoi(line); convErr == nil {
			return v, true, nil
		}
		m.printf("Invalid number, Try again.\n")
	}
}

// readLine reads one full line without its terminator
// io.EOF is only returned once no more input is left.
func (m *Menu) readLine(prompt string) (string, error) {
	m.printf("%s", prompt)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
