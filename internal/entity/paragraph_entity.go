package entity

type Paragraph struct {
	Id     string
	Code   string
	Result string
}
