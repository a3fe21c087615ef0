// Package wire moves tree updates across process boundaries and reads
// them from hand-written scripts.
//
// # Binary form
//
// EncodeUpdate and DecodeUpdate use MessagePack. Roles, actions,
// properties and enum values travel by name, so producer and consumer may
// be built from different revisions of the property schema as long as
// every name they exchange is known to both. Node ids are 16-byte binary
// strings in the same little-endian order as types.NodeID.
//
// Encoder and Decoder frame a stream of updates on an io.Writer or
// io.Reader, one MessagePack value per update.
//
// # Scripts
//
// ParseScript reads a YAML document describing a sequence of updates:
//
//	name: two buttons
//	options:
//	  strict_relations: true
//	updates:
//	  - root: 1
//	    focus: 2
//	    nodes:
//	      - id: 1
//	        role: Window
//	        props:
//	          children: [2, 3]
//	      - id: 2
//	        role: Button
//	        actions: [Focus, Default]
//	        props:
//	          name: OK
//	          bounds: [10, 10, 90, 40]
//	      - id: 3
//	        role: Button
//	        props: {name: Cancel}
//	  - focus: 99
//	    expect_error: dangling_focus
//
// A focus of "none" clears the focus. Property names and enum values are
// matched ignoring case, underscores and dashes.
package wire
