// Package langdef loads grammars from declarative descriptions.
//
// A description names its contexts, enclosers and operators with plain
// strings.  An encloser whose opening and closing tokens are equal is a
// symmetric encloser.  Elements without a context bind to the root
// context.  A description without contexts is contextless: a single root
// context permits every element and uses the description's top level
// whitespace and escape.
//
// Descriptions are read from YAML, TOML or JSON and may be adjusted by
// RFC 6902 JSON patches before the grammar is built, so that a dialect
// can be expressed as a small patch over a base grammar:
//
//	root: root
//	contexts:
//	  - name: root
//	    tags: ["", STRING]
//	    whitespace: " \n\t\r"
//	  - name: string
//	    escape: "\\"
//	enclosers:
//	  - {tag: "", open: "(", close: ")"}
//	  - {tag: STRING, open: "\"", close: "\"", context: string}
package langdef
