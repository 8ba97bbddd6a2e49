package repositories

// Backend groups the version-control collaborators of one implementation
// (in-process go-git, git CLI, ...).
type Backend struct {
	Name     string
	Resolver RepositoryResolver
	Reader   VCSReader
	Writer   VCSWriter
	Notifier DirtyStateNotifier
	Lister   ModifiedFilesLister
}
