package rule

import "github.com/joripage/matching-sim/pkg/venue/model"

// Rule rejects a submission before it reaches any book.
type Rule interface {
	Check(req *model.SubmitRequest) error
}
