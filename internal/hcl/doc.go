// Package hcl provides the concrete HCL implementation of the settings
// Loader interface defined in the `config` package. It is responsible for
// file parsing and for translating HCL attributes, through cty, into the
// format-agnostic settings model.
package hcl
