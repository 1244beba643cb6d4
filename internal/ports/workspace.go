package ports

// WorkspaceInitializer scaffolds patternkit.yaml and sample fixtures under root.
type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
