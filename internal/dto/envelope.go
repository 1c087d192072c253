package dto

// Meta carries the machine-readable code and human message of a successful
// response.
type Meta struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Response is the standard success envelope.
type Response struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

func NewResponse(data interface{}, message string) Response {
	return Response{
		Data: data,
		Meta: Meta{Code: "SUCCESS", Message: message},
	}
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}
