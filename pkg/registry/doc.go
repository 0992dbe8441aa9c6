// Package registry names style properties.
//
// A Registry maps case-insensitive property names to the ids a stylecache
// works with, and records which properties are inherited by children and
// which can be animated. Default returns the built-in set; Load and Parse read
// a custom set from YAML or TOML:
//
//	properties:
//	  - name: color
//	    id: 4
//	    inherited: true
//	    animatable: true
package registry
