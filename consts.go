package lazydi

type tag string

const (
	inject tag = "di.inject" // fields carrying this tag are filled by the Resolver. The field MUST be exported.
)
