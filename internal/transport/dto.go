// Package transport holds the request DTOs for the REST surface.
//
// Patch DTOs use pointer fields throughout: a nil field was absent from
// the payload and must leave the stored value untouched, while a present
// zero or empty value is applied as-is.
package transport

type CreateCategoryRequest struct {
	Title       string `json:"title"`
	CaseIDs     IDList `json:"caseIds"`
	CaseHomeIDs IDList `json:"caseHomeIds"`
}

type PatchCategoryRequest struct {
	Title       *string `json:"title"`
	CaseIDs     *IDList `json:"caseIds"`
	CaseHomeIDs *IDList `json:"caseHomeIds"`
}

type CreateDeveloperRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Img        string `json:"img"`
	Telegram   string `json:"telegram"`
	Instagram  string `json:"instagram"`
	Whatsapp   string `json:"whatsapp"`
	VK         string `json:"vk"`
	Tiktok     string `json:"tiktok"`
	Behance    string `json:"behance"`
	Pinterest  string `json:"pinterest"`
	Artstation string `json:"artstation"`
}

type PatchDeveloperRequest struct {
	Name       *string `json:"name"`
	Position   *string `json:"position"`
	Img        *string `json:"img"`
	Telegram   *string `json:"telegram"`
	Instagram  *string `json:"instagram"`
	Whatsapp   *string `json:"whatsapp"`
	VK         *string `json:"vk"`
	Tiktok     *string `json:"tiktok"`
	Behance    *string `json:"behance"`
	Pinterest  *string `json:"pinterest"`
	Artstation *string `json:"artstation"`
}

type CreateCaseRequest struct {
	Name         string     `json:"name"`
	Price        *FlexFloat `json:"price"`
	Img          []ImageRef `json:"img"`
	Website      string     `json:"website"`
	Date         string     `json:"date"`
	DeveloperIDs IDList     `json:"developerIds"`
	CategoryIDs  IDList     `json:"categoryIds"`
}

type PatchCaseRequest struct {
	Name         *string     `json:"name"`
	Price        *FlexFloat  `json:"price"`
	Img          *[]ImageRef `json:"img"`
	Website      *string     `json:"website"`
	Date         *string     `json:"date"`
	DeveloperIDs *IDList     `json:"developerIds"`
	CategoryIDs  *IDList     `json:"categoryIds"`
}

type CreateShopRequest struct {
	Name        string     `json:"name"`
	Price       *FlexFloat `json:"price"`
	Img         []ImageRef `json:"img"`
	Website     string     `json:"website"`
	CategoryIDs IDList     `json:"categoryIds"`
}

type PatchShopRequest struct {
	Name        *string     `json:"name"`
	Price       *FlexFloat  `json:"price"`
	Img         *[]ImageRef `json:"img"`
	Website     *string     `json:"website"`
	CategoryIDs *IDList     `json:"categoryIds"`
}

type CreateProductRequest struct {
	Name         string     `json:"name"`
	Price        *FlexFloat `json:"price"`
	Img          []ImageRef `json:"img"`
	Description  string     `json:"description"`
	Organization string     `json:"organization"`
	Website      string     `json:"website"`
	CategoryIDs  IDList     `json:"categoryIds"`
}

type PatchProductRequest struct {
	Name         *string     `json:"name"`
	Price        *FlexFloat  `json:"price"`
	Img          *[]ImageRef `json:"img"`
	Description  *string     `json:"description"`
	Organization *string     `json:"organization"`
	Website      *string     `json:"website"`
	CategoryIDs  *IDList     `json:"categoryIds"`
}

type CreateDiscussionRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Company string   `json:"company"`
	Budget  *FlexInt `json:"budget"`
	Message string   `json:"message"`
}

type PatchDiscussionRequest struct {
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
	Email   *string  `json:"email"`
	Company *string  `json:"company"`
	Budget  *FlexInt `json:"budget"`
	Message *string  `json:"message"`
}

type CreateUserRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type PatchUserRequest struct {
	Login    *string `json:"login"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}
