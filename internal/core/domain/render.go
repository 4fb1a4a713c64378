package domain

// RenderNode is a node of the tree an evaluator produces from a module.
type RenderNode struct {
	Name     string
	Children []RenderNode
}

// RootNodeName names the node returned by the instantiate boundary.
const RootNodeName = "root"

// NewRootNode creates a root node with the given children.
func NewRootNode(children ...RenderNode) RenderNode {
	return RenderNode{Name: RootNodeName, Children: children}
}
