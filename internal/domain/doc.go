// Package domain contains the core entities of the review platform (categories,
// users, reviews and comments), the list options shared by every collection
// endpoint, and the client-facing error taxonomy. It is independent of any
// specific storage or delivery mechanism.
package domain
