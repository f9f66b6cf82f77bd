package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeDeck   = "deck"
	scopeFinder = "finder"
)

const (
	actionQuit       Action = "quit"
	actionAutoplay   Action = "autoplay"
	actionPrevious   Action = "previous"
	actionNext       Action = "next"
	actionFullScreen Action = "fullscreen"
	actionArrowLeft  Action = "arrow_left"
	actionArrowRight Action = "arrow_right"
	actionEscape     Action = "escape"
	actionFind       Action = "find"
	actionHelp       Action = "help"
	actionNavigate   Action = "navigate"
	actionSelect     Action = "select"
	actionClose      Action = "close"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Only ctrl+c is global; the finder needs every printable key.
	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeDeck, actionPrevious, []string{"h"}, "previous")
	reg(scopeDeck, actionNext, []string{"l"}, "next")
	reg(scopeDeck, actionArrowLeft, []string{"left"}, "prev (full screen)")
	reg(scopeDeck, actionArrowRight, []string{"right"}, "next (full screen)")
	reg(scopeDeck, actionAutoplay, []string{"space", " "}, "play/pause")
	reg(scopeDeck, actionFullScreen, []string{"f"}, "full screen")
	reg(scopeDeck, actionEscape, []string{"esc"}, "exit full screen")
	reg(scopeDeck, actionFind, []string{"/"}, "find")
	reg(scopeDeck, actionHelp, []string{"?"}, "help")
	reg(scopeDeck, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeFinder, actionNavigate, []string{"up", "down", "ctrl+p", "ctrl+n"}, "navigate")
	reg(scopeFinder, actionSelect, []string{"enter"}, "jump")
	reg(scopeFinder, actionClose, []string{"esc"}, "close")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, then in the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		// Single runes keep their case so "F" and "f" can differ.
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "escape", "esc")
	return s
}
