package checks

import (
	"github.com/yaklabco/goslang/pkg/config"
	"github.com/yaklabco/goslang/pkg/lint"
)

// RegisterAll registers all built-in checks with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Parsing
	registry.Register(NewParsingErrorCheck()) // SL100

	// Complexity
	registry.Register(NewCognitiveComplexityCheck())  // SL101
	registry.Register(NewNestedControlFlowCheck())    // SL102
	registry.Register(NewTooComplexExpressionCheck()) // SL107
	registry.Register(NewTooManyParametersCheck())    // SL111
	registry.Register(NewTooLongFunctionCheck())      // SL112
	registry.Register(NewTooManyCasesCheck())         // SL113

	// Duplication
	registry.Register(NewAllBranchesIdenticalCheck())    // SL103
	registry.Register(NewDuplicateBranchCheck())         // SL104
	registry.Register(NewDuplicatedFunctionCheck())      // SL105
	registry.Register(NewStringLiteralDuplicatedCheck()) // SL106
	registry.Register(NewIdenticalBinaryOperandsCheck()) // SL108
	registry.Register(NewIdenticalConditionsCheck())     // SL120

	// Structure
	registry.Register(NewCollapsibleIfCheck())           // SL109
	registry.Register(NewEmptyBlockCheck())              // SL110
	registry.Register(NewCodeAfterJumpCheck())           // SL116
	registry.Register(NewMatchWithoutElseCheck())        // SL119
	registry.Register(NewElseIfWithoutElseCheck())       // SL124
	registry.Register(NewEmptyFunctionCheck())           // SL125
	registry.Register(NewUnusedFunctionParameterCheck()) // SL126
	registry.Register(NewUnusedPrivateMethodCheck())     // SL127

	// Style
	registry.Register(NewBooleanLiteralCheck())       // SL114
	registry.Register(NewSelfAssignmentCheck())       // SL115
	registry.Register(NewTooLongLineCheck())          // SL121
	registry.Register(NewTabsCheck())                 // SL122
	registry.Register(NewRedundantParenthesesCheck()) // SL123

	// Comments
	registry.Register(NewTodoCommentCheck())  // SL117
	registry.Register(NewFixmeCommentCheck()) // SL118
}

// sonarKeys maps the keys of the equivalent SonarSource rules to check IDs.
//
//nolint:gochecknoglobals // Static alias table
var sonarKeys = map[string]string{
	"S2260": "SL100",
	"S3776": "SL101",
	"S134":  "SL102",
	"S3923": "SL103",
	"S1871": "SL104",
	"S4144": "SL105",
	"S1192": "SL106",
	"S1067": "SL107",
	"S1764": "SL108",
	"S1066": "SL109",
	"S108":  "SL110",
	"S107":  "SL111",
	"S138":  "SL112",
	"S1479": "SL113",
	"S1125": "SL114",
	"S1656": "SL115",
	"S1763": "SL116",
	"S1135": "SL117",
	"S1134": "SL118",
	"S131":  "SL119",
	"S1862": "SL120",
	"S103":  "SL121",
	"S105":  "SL122",
	"S1110": "SL123",
	"S126":  "SL124",
	"S1186": "SL125",
	"S1172": "SL126",
	"S1144": "SL127",
}

// RegisterAliases registers the SonarSource rule keys as aliases of the
// equivalent checks, for example "S3776" -> SL101.
func RegisterAliases(registry *lint.Registry) {
	for alias, id := range sonarKeys {
		registry.RegisterAlias(alias, id)
	}
}

// init registers all built-in checks with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic check registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = lint.DefaultRegistry.RuleInfos
}
