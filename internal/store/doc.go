// Package store defines the persistence interfaces for categories, reviews,
// comments and users, together with the existence checks that guard every
// id- and username-keyed operation. These interfaces keep handlers independent
// of the concrete database implementation.
package store
