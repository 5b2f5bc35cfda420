// Package config loads YAML patch scripts and runs them through host
// objects.
//
// A script declares objects, wires their outlets to inlets, and lists
// the messages to deliver, in order:
//
//	objects:
//	  - name: max
//	    kind: Lmax
//	    args: "4 @maxlen 16"
//	  - name: pad
//	    kind: Lpad
//	    args: "1 0 5"
//	connect:
//	  - {from: max, outlet: 0, to: pad, inlet: 0}
//	events:
//	  - {to: max, inlet: 0, message: "1 5 3"}
//	  - {to: pad, message: post}
//
// Messages use the host text form: "1 2 3" is a list, "2.5" a float,
// and a leading word is the selector ("foo 1 2", "bang", "maxlen 8").
package config
