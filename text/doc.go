// Package text renders presentations as a plain text handout.
//
// The handout keeps the structure of the slides: every slide is separated by
// a dashed line, headings are underlined with tildes and capture blocks are
// framed and prefixed with "| ". Interactive operations such as waits,
// transitions and colors produce no output.
package text
