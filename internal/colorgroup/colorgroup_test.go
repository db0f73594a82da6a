package colorgroup

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina3mf/internal/catalog"
	"lumina3mf/internal/report"
	"lumina3mf/internal/xmlfind"
	"lumina3mf/palette"
)

const coloredInput = `<model xmlns="http://schemas.microsoft.com/3dmanufacturing/core/2015/02">
  <resources>
    <object id="1" name="Red">
      <mesh>
        <triangles>
          <triangle v1="0" v2="1" v3="2"/>
          <triangle v1="0" v2="2" v3="3"/>
        </triangles>
      </mesh>
    </object>
    <object id="2" name="White">
      <mesh>
        <triangles>
          <triangle v1="0" v2="1" v3="2"/>
        </triangles>
      </mesh>
    </object>
  </resources>
  <build>
    <item objectid="1" partnumber="Red"/>
    <item objectid="2" partnumber="White"/>
    <item objectid="2" partnumber="Lid"/>
    <item objectid="2"/>
  </build>
</model>`

func parseRoot(t *testing.T, xml string) (*etree.Document, *etree.Element) {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))

	return doc, doc.Root()
}

func TestInjectBeforeFirstObject(t *testing.T) {
	_, root := parseRoot(t, coloredInput)
	resources := xmlfind.Child(root, "resources")

	groups := Inject(root, resources, palette.Entries(palette.RYBW))

	require.Equal(t, map[string]string{"Red": "1", "Yellow": "2", "Blue": "3", "White": "4"}, groups)

	// The four colorgroups sit in palette order before both objects.
	children := resources.ChildElements()
	require.Len(t, children, 6)

	wantColors := []string{"#FF0000FF", "#FFFF00FF", "#0000FFFF", "#FFFFFFFF"}
	for i, want := range wantColors {
		cg := children[i]
		assert.Equal(t, "colorgroup", cg.Tag)

		c := xmlfind.Child(cg, "color")
		require.NotNil(t, c)
		assert.Equal(t, want, c.SelectAttrValue("color", ""))
	}

	assert.Equal(t, "object", children[4].Tag)
	assert.Equal(t, "object", children[5].Tag)

	// The material namespace gets declared on the root.
	assert.Equal(t, MaterialNamespace, root.SelectAttrValue("xmlns:m", ""))
}

func TestInjectAppendsWithoutObjects(t *testing.T) {
	_, root := parseRoot(t, `<model><resources><basematerials id="9"/></resources></model>`)
	resources := xmlfind.Child(root, "resources")

	Inject(root, resources, palette.Entries(palette.CMYW))

	children := resources.ChildElements()
	require.Len(t, children, 5)

	// Existing resources stay first and untouched.
	assert.Equal(t, "basematerials", children[0].Tag)
	assert.Equal(t, "colorgroup", children[1].Tag)
	assert.Equal(t, "1", children[1].SelectAttrValue("id", ""))
	assert.Equal(t, "4", children[4].SelectAttrValue("id", ""))
}

func TestInjectReusesExistingPrefix(t *testing.T) {
	_, root := parseRoot(t, `<model xmlns:mat="`+MaterialNamespace+`"><resources/></model>`)
	resources := xmlfind.Child(root, "resources")

	Inject(root, resources, palette.Entries(palette.RYBW))

	cg := resources.ChildElements()[0]
	assert.Equal(t, "mat", cg.Space)
	// No duplicate declaration was added.
	assert.Equal(t, "", root.SelectAttrValue("xmlns:m", ""))
}

func TestInjectTwiceDuplicatesIDs(t *testing.T) {
	// Double injection is documented as unsupported: ids collide rather
	// than being deduplicated.
	_, root := parseRoot(t, coloredInput)
	resources := xmlfind.Child(root, "resources")

	Inject(root, resources, palette.Entries(palette.RYBW))
	Inject(root, resources, palette.Entries(palette.RYBW))

	var ones int
	for _, cg := range xmlfind.Children(resources, "colorgroup") {
		if cg.SelectAttrValue("id", "") == "1" {
			ones++
		}
	}

	assert.Equal(t, 2, ones)
}

func TestTagTriangles(t *testing.T) {
	_, root := parseRoot(t, coloredInput)
	objects, err := catalog.Build(root)
	require.NoError(t, err)

	rep := &report.Report{}
	groups := map[string]string{"Red": "1", "White": "4"}

	total := TagTriangles(objects, groups, rep)

	assert.Equal(t, 3, total)
	assert.Equal(t, 3, rep.TrianglesTagged)
	assert.Equal(t, 2, rep.ObjectsTagged)

	red := catalog.Triangles(objects[0])
	for _, tri := range xmlfind.Children(red, "triangle") {
		assert.Equal(t, "1", tri.SelectAttrValue("pid", ""))
		assert.Equal(t, "0", tri.SelectAttrValue("p1", ""))
	}

	white := catalog.Triangles(objects[1])
	assert.Equal(t, "4", xmlfind.Children(white, "triangle")[0].SelectAttrValue("pid", ""))
}

func TestTagTrianglesSkips(t *testing.T) {
	_, root := parseRoot(t, `<model>
  <resources>
    <object id="1" name="Lid">
      <mesh><triangles><triangle v1="0" v2="1" v3="2"/></triangles></mesh>
    </object>
    <object id="2" name="Red"/>
    <object id="3" name="All"><components><component objectid="1"/></components></object>
  </resources>
</model>`)

	objects, err := catalog.Build(root)
	require.NoError(t, err)

	rep := &report.Report{}
	total := TagTriangles(objects, map[string]string{"Red": "1"}, rep)

	// Unmapped name, missing mesh and assembly: nothing gets tagged and
	// no triangle receives a default colorgroup.
	assert.Equal(t, 0, total)
	assert.True(t, rep.HasWarnings())

	lid := catalog.Triangles(objects[0])
	assert.Equal(t, "", xmlfind.Children(lid, "triangle")[0].SelectAttrValue("pid", ""))
}

func TestTagBuildItems(t *testing.T) {
	_, root := parseRoot(t, coloredInput)

	rep := &report.Report{}
	groups := map[string]string{"Red": "1", "White": "4"}

	count := TagBuildItems(root, groups, rep)

	assert.Equal(t, 2, count)
	assert.Equal(t, 2, rep.ItemsTagged)

	build := xmlfind.Child(root, "build")
	items := xmlfind.Children(build, "item")

	assert.Equal(t, "1", items[0].SelectAttrValue("materialid", ""))
	assert.Equal(t, "4", items[1].SelectAttrValue("materialid", ""))

	// Unmapped and empty partnumbers stay untouched.
	assert.Equal(t, "", items[2].SelectAttrValue("materialid", ""))
	assert.Equal(t, "", items[3].SelectAttrValue("materialid", ""))
}

func TestTagBuildItemsNoBuild(t *testing.T) {
	_, root := parseRoot(t, `<model><resources/></model>`)

	rep := &report.Report{}
	count := TagBuildItems(root, map[string]string{"Red": "1"}, rep)

	assert.Equal(t, 0, count)
	assert.True(t, rep.HasWarnings())
}
