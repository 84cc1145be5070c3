package report

import "github.com/cleanocean/coa-backend/internal/domain"

// BuildBreakdownTree nests grouped rows into the three-level sunburst tree:
// Debris → material → category → item leaves. Sibling order is the encounter
// order of the input rows; the consuming chart relies on it, so nothing here
// sorts. Find-or-create is a linear scan with first match winning — child
// counts are tens to low hundreds, an index would be overhead.
func BuildBreakdownTree(groups []domain.ItemQuantity) *domain.BreakdownNode {
	root := &domain.BreakdownNode{Name: "Debris", Children: []*domain.BreakdownNode{}}

	for _, g := range groups {
		material := findOrAddChild(root, g.Material)
		category := findOrAddChild(material, g.Category)

		count := g.QuantitySum
		category.Children = append(category.Children, &domain.BreakdownNode{
			Name:  g.ItemName,
			Count: &count,
		})
	}

	return root
}

func findOrAddChild(parent *domain.BreakdownNode, name string) *domain.BreakdownNode {
	for _, child := range parent.Children {
		if child.Name == name {
			return child
		}
	}

	child := &domain.BreakdownNode{Name: name}
	parent.Children = append(parent.Children, child)
	return child
}

// BuildMaterialTaxonomy nests grouped rows into material → category →
// item_name lists, deduplicated by key, in first-encounter order. An item
// with no name shows under its category name instead.
func BuildMaterialTaxonomy(groups []domain.ItemQuantity) []*domain.MaterialNode {
	materials := make([]*domain.MaterialNode, 0)
	matIdx := make(map[string]*domain.MaterialNode)
	catIdx := make(map[string]map[string]*domain.CategoryNode)
	itemSeen := make(map[*domain.CategoryNode]map[string]struct{})

	for _, g := range groups {
		mat, ok := matIdx[g.Material]
		if !ok {
			mat = &domain.MaterialNode{Material: g.Material, Categories: []*domain.CategoryNode{}}
			matIdx[g.Material] = mat
			catIdx[g.Material] = make(map[string]*domain.CategoryNode)
			materials = append(materials, mat)
		}

		cat, ok := catIdx[g.Material][g.Category]
		if !ok {
			cat = &domain.CategoryNode{Category: g.Category, ItemNames: []domain.ItemName{}}
			catIdx[g.Material][g.Category] = cat
			itemSeen[cat] = make(map[string]struct{})
			mat.Categories = append(mat.Categories, cat)
		}

		display := g.ItemName
		if display == "" {
			display = g.Category
		}
		if _, ok := itemSeen[cat][display]; ok {
			continue
		}
		itemSeen[cat][display] = struct{}{}
		cat.ItemNames = append(cat.ItemNames, domain.ItemName{ItemName: display})
	}

	return materials
}

// BuildLocationHierarchy nests distinct location triples county → town →
// site. Input comes ordered, so each level reads alphabetically. Triples
// with no county or town are dropped, matching the flat location lists.
func BuildLocationHierarchy(triples []domain.LocationTriple) []*domain.CountyNode {
	counties := make([]*domain.CountyNode, 0)
	countyIdx := make(map[string]*domain.CountyNode)
	townIdx := make(map[string]map[string]*domain.TownNode)

	for _, t := range triples {
		if t.County == "" || t.Town == "" {
			continue
		}

		county, ok := countyIdx[t.County]
		if !ok {
			county = &domain.CountyNode{County: t.County, Towns: []*domain.TownNode{}}
			countyIdx[t.County] = county
			townIdx[t.County] = make(map[string]*domain.TownNode)
			counties = append(counties, county)
		}

		town, ok := townIdx[t.County][t.Town]
		if !ok {
			town = &domain.TownNode{Town: t.Town, Sites: []string{}}
			townIdx[t.County][t.Town] = town
			county.Towns = append(county.Towns, town)
		}

		town.Sites = append(town.Sites, t.SiteName)
	}

	return counties
}
