package chatbot

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Rule struct {
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type Script struct {
	Rules    []Rule `yaml:"rules"`
	Fallback string `yaml:"fallback"`
}

// Responder maps free-text input to a canned reply. Matching is first rule
// wins, in script order, on case-insensitive substring keyword hits.
type Responder struct {
	mu     sync.RWMutex
	script Script
}

// defaultScript is compiled in and used until a script file is loaded.
var defaultScript = Script{
	Rules: []Rule{
		{Keywords: []string{"hello", "hi", "hey"}, Reply: "Hi there! Ask me about projects, experience, blog posts or booking an appointment."},
		{Keywords: []string{"project"}, Reply: "You can browse all projects on the projects page; the featured ones are pinned at the top."},
		{Keywords: []string{"experience", "work", "job"}, Reply: "The experience section lists roles, companies and dates, newest first."},
		{Keywords: []string{"appointment", "booking", "meeting", "schedule"}, Reply: "Appointments can be booked from the contact page; pick a free slot and you'll get a confirmation email."},
		{Keywords: []string{"blog", "article", "post"}, Reply: "The blog has write-ups on recent work; feel free to leave a comment."},
		{Keywords: []string{"contact", "email", "reach"}, Reply: "Use the contact form and you'll get a reply as soon as possible."},
	},
	Fallback: "Sorry, I didn't get that. Try asking about projects, experience, the blog or appointments.",
}

func NewResponder() *Responder {
	return &Responder{script: defaultScript}
}

// LoadFile replaces the active script with the YAML file at path.
func (r *Responder) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	if len(s.Rules) == 0 {
		return fmt.Errorf("script has no rules")
	}
	if s.Fallback == "" {
		s.Fallback = defaultScript.Fallback
	}

	r.mu.Lock()
	r.script = s
	r.mu.Unlock()
	return nil
}

// Reply returns the first matching rule's reply, or the fallback.
func (r *Responder) Reply(input string) string {
	input = strings.ToLower(input)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.script.Rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(input, strings.ToLower(kw)) {
				return rule.Reply
			}
		}
	}
	return r.script.Fallback
}
