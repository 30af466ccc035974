package rules

import "github.com/xkilldash9x/skelgen-cli/api/schemas"

func sizeOf(s schemas.Size) *schemas.Size { return &s }

// builtinCatalog is the default mapping set. Class heuristics outrank tag
// rules so an avatar image becomes a circle before the generic img rule
// sees it; everything here stays below the customary caller priorities.
var builtinCatalog = []schemas.MappingRule{
	{Match: schemas.MatchPredicate{ClassContains: "avatar"}, To: schemas.RuleTarget{Shape: schemas.ShapeCircle}, Priority: 20},
	{Match: schemas.MatchPredicate{Tag: "img", ClassContains: "circle"}, To: schemas.RuleTarget{Shape: schemas.ShapeCircle}, Priority: 20},
	{Match: schemas.MatchPredicate{Tag: "img", ClassContains: "rounded"}, To: schemas.RuleTarget{Shape: schemas.ShapeRect, BorderRadius: sizeOf(schemas.Unit("0.5rem"))}, Priority: 20},

	{Match: schemas.MatchPredicate{Tag: "h1"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "h2"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "h3"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "h4"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "h5"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "h6"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "p"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 3}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "button"}, To: schemas.RuleTarget{Shape: schemas.ShapeRect, BorderRadius: sizeOf(schemas.Unit("0.375rem"))}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "input"}, To: schemas.RuleTarget{Shape: schemas.ShapeRect, BorderRadius: sizeOf(schemas.Unit("0.25rem"))}, Priority: 10},
	{Match: schemas.MatchPredicate{Tag: "img"}, To: schemas.RuleTarget{Shape: schemas.ShapeRect}, Priority: 10},

	{Match: schemas.MatchPredicate{Tag: "a"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 5},
	{Match: schemas.MatchPredicate{Tag: "span"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 5},
	{Match: schemas.MatchPredicate{Tag: "label"}, To: schemas.RuleTarget{Shape: schemas.ShapeLine, Lines: 1}, Priority: 5},
}
