// Package config loads HCL builder configuration files into the plain Go
// structures the state package's Builder consumes: automations, betting
// structure, antes, blinds, and street layout, enumerated rather than
// left free-form.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Document is the top-level HCL file: zero or more named hand configurations,
// so a single file can describe a whole variant catalogue.
type Document struct {
	Hands []Hand `hcl:"hand,block"`
}

// Hand is one builder configuration: automations, betting
// structure, mode, ante trimming, and the per-player and per-street blocks.
type Hand struct {
	Name               string   `hcl:"name,label"`
	BettingStructure   string   `hcl:"betting_structure,optional"`
	Mode               string   `hcl:"mode,optional"`
	AnteTrimmingStatus bool     `hcl:"ante_trimming_status,optional"`
	Automations        []string `hcl:"automations,optional"`
	Players            []Player `hcl:"player,block"`
	Streets            []Street `hcl:"street,block"`

	// HandType names the showdown lookup variant (e.g. "standard_high",
	// "standard_low", "short_deck_high", "eight_or_better_low", "badugi",
	// "kuhn_high"). Each hand configuration holds exactly one hand type;
	// hi-lo split games need two hand types at the Builder level, which this
	// schema cannot express, so they are assembled in code, not HCL.
	HandType       string `hcl:"hand_type,optional"`
	HandSelection  string `hcl:"hand_selection,optional"`
	HandCardCount  int    `hcl:"hand_card_count,optional"`
	HandHoleCount  int    `hcl:"hand_hole_count,optional"`
	HandBoardCount int    `hcl:"hand_board_count,optional"`
}

// Player is one player's fixed inputs: starting stack, ante, blind or
// straddle, and bring-in, all keyed by player index.
type Player struct {
	Index           string `hcl:"index,label"`
	StartingStack   int    `hcl:"starting_stack"`
	Ante            int    `hcl:"ante,optional"`
	BlindOrStraddle int    `hcl:"blind_or_straddle,optional"`
	BringIn         int    `hcl:"bring_in,optional"`
}

// Street is one street's deal/betting configuration.
type Street struct {
	Name               string `hcl:"name,label"`
	CardBurning        bool   `hcl:"card_burning,optional"`
	HoleDealPattern    []bool `hcl:"hole_deal_pattern,optional"`
	BoardDealCount     int    `hcl:"board_deal_count,optional"`
	Draw               bool   `hcl:"draw,optional"`
	OpeningRule        string `hcl:"opening_rule,optional"`
	MinBetOrRaise      int    `hcl:"min_bet_or_raise"`
	MaxCompletionCount int    `hcl:"max_completion_count,optional"`
}

// Error reports an invalid builder configuration: malformed input here is
// fatal to construction, never a runtime IllegalAction.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// Load parses an HCL file into a Document.
func Load(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data, filename)
}

// Parse decodes raw HCL bytes into a Document; filename is used only for
// diagnostic messages.
func Parse(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, &Error{Reason: diags.Error()}
	}
	var doc Document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, &Error{Reason: diags.Error()}
	}
	for i := range doc.Hands {
		if err := doc.Hands[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

// Hand looks up a named hand configuration.
func (d *Document) Hand(name string) (*Hand, error) {
	for i := range d.Hands {
		if d.Hands[i].Name == name {
			return &d.Hands[i], nil
		}
	}
	return nil, &Error{Reason: fmt.Sprintf("no hand configuration named %q", name)}
}

// Validate checks the structural invariants a ConfigurationError should
// catch before a Builder ever sees this configuration: at least two
// players, at least one street, positive min-bet, and no street that both
// deals hole cards and allows drawing.
func (h *Hand) Validate() error {
	if len(h.Players) < 2 {
		return &Error{Reason: "fewer than 2 players"}
	}
	if len(h.Streets) == 0 {
		return &Error{Reason: "no streets configured"}
	}
	for _, s := range h.Streets {
		if s.MinBetOrRaise <= 0 {
			return &Error{Reason: fmt.Sprintf("street %q: min_bet_or_raise must be positive", s.Name)}
		}
		if len(s.HoleDealPattern) > 0 && s.Draw {
			return &Error{Reason: fmt.Sprintf("street %q: cannot both deal hole cards and allow drawing", s.Name)}
		}
	}
	return nil
}
