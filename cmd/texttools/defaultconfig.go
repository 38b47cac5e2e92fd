package main

// DefaultConfigYaml is the rule set a fresh install starts with: the RHP
// strict preset for anything that looks like an inspect dump, and the
// default TTO strategy order for everything else.
var DefaultConfigYaml = []byte(`
- name: ruby-inspect-dumps
  pattern: "**/*.inspect"
  config:
    rhp:
      preset: strict
- name: default-thai-text
  pattern: "**"
  config:
    tto:
      strategies: [simple, composite, zeroWidth]
      toneStrategy: latin
      fontStyle: loopless
`)
