package zerr

// Namespace offsets for packages that extend the taxonomy with their own
// codes via RegisterIdFctMessage. Each package's codes start at its offset
// and must stay below the next one.
const (
	MinPkgArchiveZip  CodeError = 100
	MinPkgArchivePath CodeError = 200
	MinPkgIOUtils     CodeError = 300
	MinPkgEncoding    CodeError = 400
)
