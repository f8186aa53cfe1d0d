// Package api serves the review platform over HTTP. Handlers translate
// requests into store operations, run parameter checks alongside the main
// operation and normalize every failure into a {"msg": ...} response.
package api
