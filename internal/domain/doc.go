// Package domain contains the core concepts of the qr2svg service: the
// validated render request, module shapes, the module grid contract and
// the error taxonomy.
// Keep this package free of transport (HTTP) and encoder concerns.
package domain
