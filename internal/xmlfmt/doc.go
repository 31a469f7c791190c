// Package xmlfmt renders tokens and parse trees in the analyzer's two XML
// text formats.
//
// Format 1 is a flat token dump:
//
//	<tokens>
//	<keyword>class</keyword>
//	...
//	</tokens>
//
// Format 2 nests one element per tagged nonterminal; a node at depth d has
// its open and close tags indented by d spaces and its terminals by d+1.
// Only '<', '>' and '&' are escaped in lexemes.
package xmlfmt
