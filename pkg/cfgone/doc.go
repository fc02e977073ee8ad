/*
Package cfgone resolves hierarchical YAML configuration with inheritance.

# Overview

cfgone loads a YAML config file and resolves its "extends" chain: a file may
declare a list of parent files whose values it inherits and overrides. Parents
are merged left to right, then the file's own values are merged on top. The
resolved mapping is wrapped in an Object, which offers field access, typed
getters with defaults, and safe serialization back to YAML or JSON.

# Basic Usage

Load the nearest config.yaml and read values:

	cfg, err := cfgone.Load()
	if err != nil {
	    log.Fatal(err)
	}

	host := cfg.GetString("host", "localhost")
	port := cfg.GetInt("port", 8080)

	db, err := cfg.Get("database")

# Inheritance

A config file inherits from parents via the reserved "extends" key:

	extends:
	  - base.yaml
	  - overrides/prod.yaml

	host: api.example.com

Later entries override earlier ones, and the file's own keys override all
parents. Relative paths are resolved against the directory of the originally
loaded file. Diamond-shaped inheritance is allowed; true cycles are rejected
with ErrCircularExtends. The "extends" key is metadata and never appears in
the resolved config.

# Discovery

Load finds the config file in three tiers, taking the first hit: the start
directory itself, the project root (nearest ancestor containing a marker such
as go.mod or .git), and finally each ancestor directory walking outward. The
filename, start directory, and marker list are all configurable via options:

	cfg, err := cfgone.Load(
	    cfgone.WithFilename("service.yaml"),
	    cfgone.WithStartDir("/srv/app"),
	)

# Merge Semantics

Nested mappings merge recursively with override precedence. Sequences and
scalars replace wholesale; there is no list concatenation. Merging never
mutates its inputs.

# Thread Safety

Load is safe to call concurrently; each call uses its own cycle-detection
state. An Object is a plain mutable value with no internal locking; callers
that mutate a shared Object from multiple goroutines must serialize access
themselves.
*/
package cfgone
