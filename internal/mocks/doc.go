// Package mocks provides centralized testify mocks of the store interfaces.
//
// Handlers depend on store.Checker and the per-resource stores; tests in other
// packages build them from these mocks instead of defining inline fakes:
//
//	import "github.com/phrazzld/tabletop-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    reviews := new(mocks.TestifyMockReviewStore)
//	    reviews.On("GetByID", mock.Anything, 2).Return(&domain.Review{ReviewID: 2}, nil)
//	    defer reviews.AssertExpectations(t)
//	    // ...
//	}
//
// When adding a new mock, name the file after the interface being mocked and
// assert at compile time that the mock satisfies it.
package mocks
