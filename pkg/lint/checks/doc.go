// Package checks provides the built-in checks of goslang. Every check works
// on the common tree and therefore runs unchanged on every guest language.
//
// # Check Domains
//
//   - Parsing:
//
//   - SL100: parsing-error - The converter could not parse the file
//
//   - Complexity:
//
//   - SL101: cognitive-complexity - Functions should not be too hard to understand
//
//   - SL102: nested-control-flow - Control flow statements should not be nested too deeply
//
//   - SL107: too-complex-expression - Expressions should not use too many conditional operators
//
//   - SL111: too-many-parameters - Functions should not have too many parameters
//
//   - SL112: too-long-function - Functions should not have too many lines of code
//
//   - SL113: too-many-cases - Match statements should not have too many cases
//
//   - Duplication:
//
//   - SL103: all-branches-identical - All branches of a conditional should not be identical
//
//   - SL104: duplicate-branch - Branches of a conditional should not have the same implementation
//
//   - SL105: duplicated-function - Functions should not have identical implementations
//
//   - SL106: string-literal-duplicated - String literals should not be duplicated
//
//   - SL108: identical-binary-operands - Both sides of an operator should not be identical
//
//   - SL120: identical-conditions - Conditions of a chain should not repeat
//
//   - Structure:
//
//   - SL109: collapsible-if - Nested if statements without else should be merged
//
//   - SL110: empty-block - Blocks should not be empty
//
//   - SL116: code-after-jump - Statements should not follow a jump
//
//   - SL119: match-without-else - Match statements should have a default case
//
//   - SL124: else-if-without-else - Else-if chains should end with else
//
//   - SL125: empty-function - Functions should not be empty
//
//   - SL126: unused-function-parameter - Private functions should use their parameters
//
//   - SL127: unused-private-method - Private methods should be used
//
//   - Style:
//
//   - SL114: boolean-literal - Boolean literals should not be redundant
//
//   - SL115: self-assignment - Variables should not be assigned to themselves
//
//   - SL121: too-long-line - Lines should not be too long
//
//   - SL122: tabs - Tabs should not be used (disabled by default)
//
//   - SL123: redundant-parentheses - Parentheses should not be doubled
//
//   - Comments:
//
//   - SL117: todo-comment - TODO comments should be tracked
//
//   - SL118: fixme-comment - FIXME comments should be tracked
//
// # Aliases
//
// Every check can also be addressed by the key of the equivalent SonarSource
// rule (for example "S3776" for SL101), so configurations written for those
// analyzers keep working.
package checks
