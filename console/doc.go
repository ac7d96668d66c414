// SPDX-License-Identifier: MIT

// Package console reads linear systems from line-oriented text and YAML.
//
// ReadSystem implements the interactive protocol: one equation per line as
// whitespace-separated numbers (coefficients followed by the constant),
// terminated by a line starting with END. Rows with a wrong width or
// non-numeric tokens are reported to the prompt writer and skipped. A "-l"
// token on the END line asks for an operation log.
//
// DecodeYAML reads the same system from a document of the form
//
//	rows:
//	  - [3, -7, 4, 10]
//	  - [1, -2, 1, 3]
package console
