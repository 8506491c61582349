package domain

import (
	"fmt"
	"strings"
)

// Strategy is the fixed enumeration of generative search strategies.
type Strategy string

// Strategies.
const (
	StrategySurnameBase   Strategy = "SURNAME_BASE"
	StrategyArgentina     Strategy = "ARGENTINA"
	StrategyUSACollege    Strategy = "USA_COLLEGE"
	StrategyTransfermarkt Strategy = "TRANSFERMARKT"
	StrategyDiscovery     Strategy = "DISCOVERY"
	StrategyGlobalScout   Strategy = "GLOBAL_SCOUT"
	StrategyFullScan      Strategy = "FULL_SCAN"
)

// StrategyPlan is the lookup-table entry for a strategy.
// Context and Hint are templates with {term} and {excluded} placeholders.
type StrategyPlan struct {
	Label   string
	Context string
	Hint    string
	Runs    []Strategy
}

// concreteStrategies run in this order under FULL_SCAN.
var concreteStrategies = []Strategy{
	StrategySurnameBase,
	StrategyArgentina,
	StrategyUSACollege,
	StrategyTransfermarkt,
	StrategyDiscovery,
	StrategyGlobalScout,
}

//nolint:lll // Instruction text is intentionally long.
var strategyTable = map[Strategy]StrategyPlan{
	StrategySurnameBase: {
		Label:   "Base Surname Scan",
		Context: `Search generally for active football players with surname "{term}" who are currently playing in Italy (Serie D, Eccellenza) or abroad.`,
		Hint:    `Suggested Google Search: {term} calciatore squadra attuale {excluded}`,
	},
	StrategyArgentina: {
		Label:   "Argentina (Youth/Lower)",
		Context: `Focus specifically on lower league or youth football in Argentina (Primera C, Federal A, Reserve Leagues). We are looking for players with surname "{term}" who might have San Marino heritage.`,
		Hint:    `Suggested Google Search: site:.ar {term} futbol "inferiores" OR "reserva" OR "passaporto"`,
	},
	StrategyUSACollege: {
		Label:   "USA College Rosters",
		Context: `Focus on US College Soccer (NCAA, NAIA) rosters for the 2023-2025 seasons. Look for players with surname "{term}". Check player bios for "Parents" or "Hometown" mentioning San Marino.`,
		Hint:    `Suggested Google Search: site:.edu "soccer roster 2024" {term}`,
	},
	StrategyTransfermarkt: {
		Label:   "Transfermarkt/Citizenship",
		Context: `Focus on football databases like Transfermarkt or Soccerway. Look for players with surname "{term}" born between 2000 and 2008 who have "San Marino" listed as citizenship.`,
		Hint:    `Suggested Google Search: site:transfermarkt.com "San Marino" {term} citizenship`,
	},
	StrategyDiscovery: {
		Label:   "Broad Lineage Discovery",
		Context: `Perform a broad discovery search for players of San Marino descent. The search term is: "{term}". Look for news articles, interviews, or database entries mentioning eligibility.`,
		Hint:    `Suggested Google Search: {term}`,
	},
	StrategyGlobalScout: {
		Label:   "Global Dragnet (No RSM)",
		Context: `Perform a GLOBAL search for players eligible for San Marino. Exclude players playing in San Marino. Look for players in Italy (Serie C/D), Switzerland, or other European leagues who hold dual citizenship. Term: "{term}"`,
		Hint:    `Suggested Google Search: {term} "doppia cittadinanza" calcio "San Marino" -site:fsgc.sm`,
	},
	StrategyFullScan: {
		Label: "Full Multi-Vector Scan",
		Runs:  concreteStrategies,
	},
}

// Strategies returns every strategy in display order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, len(concreteStrategies)+1)
	out = append(out, concreteStrategies...)
	return append(out, StrategyFullScan)
}

// ParseStrategy resolves a strategy name case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := strategyTable[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return st, nil
}

// IsValid returns true if the strategy is recognised.
func (s Strategy) IsValid() bool {
	_, ok := strategyTable[s]
	return ok
}

// String returns the string representation.
func (s Strategy) String() string {
	return string(s)
}

// Label returns the dashboard label.
func (s Strategy) Label() string {
	if p, ok := strategyTable[s]; ok {
		return p.Label
	}
	return Unknown
}

// Runs returns the concrete strategies executed for s, in order.
// A concrete strategy runs only itself.
func (s Strategy) Runs() []Strategy {
	p, ok := strategyTable[s]
	if !ok {
		return nil
	}
	if len(p.Runs) > 0 {
		out := make([]Strategy, len(p.Runs))
		copy(out, p.Runs)
		return out
	}
	return []Strategy{s}
}

// Instruction renders the context and search hint for a term.
// excluded is inserted into hints that carry negative search operators.
func (s Strategy) Instruction(term string, excluded []string) (context, hint string, err error) {
	p, ok := strategyTable[s]
	if !ok || len(p.Runs) > 0 {
		return "", "", fmt.Errorf("%w: %q has no instruction", ErrUnknownStrategy, s)
	}
	neg := make([]string, 0, len(excluded))
	for _, name := range excluded {
		neg = append(neg, "-"+name)
	}
	r := strings.NewReplacer("{term}", term, "{excluded}", strings.Join(neg, " "))
	return r.Replace(p.Context), strings.TrimSpace(r.Replace(p.Hint)), nil
}
