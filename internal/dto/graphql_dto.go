package dto

// GraphQLRequest is the POST body of the query route.
type GraphQLRequest struct {
	Query         string                 `json:"query" validate:"required,notblank"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorBody mirrors the errors array of a GraphQL response so clients parse
// transport rejections the same way as execution errors.
type ErrorBody struct {
	Errors []ErrorMessage `json:"errors"`
}
