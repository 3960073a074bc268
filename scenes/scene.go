package scenes

// SceneChanger lets scenes hand control to another scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
