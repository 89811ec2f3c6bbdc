package registry

import "cetasim/internal/model"

// builtinProfiles holds the hand-tuned scenario configuration for each
// analyzable entity. Monetary figures are in millions of euros; bilateral
// export/import bases are against Canada for EU entities, against the EU for
// Canada, and sector-wide for sector entities.
var builtinProfiles = []model.EntityProfile{
	{
		Name:           "France",
		Classification: model.ClassMemberState,
		BaseGDP:        2700000,
		BaseExports:    8500,
		BaseImports:    7200,
		Keys:           []string{"aerospatial", "vin", "fromage", "luxe", "automobile"},
	},
	{
		Name:           "Allemagne",
		Classification: model.ClassMemberState,
		BaseGDP:        3800000,
		BaseExports:    12500,
		BaseImports:    9800,
		Keys:           []string{"automobile", "machines", "chimie", "electronique", "equipements"},
	},
	{
		Name:           "Italie",
		Classification: model.ClassMemberState,
		BaseGDP:        2000000,
		BaseExports:    6800,
		BaseImports:    5200,
		Keys:           []string{"mode", "agroalimentaire", "machines", "mobilier", "automobile"},
	},
	{
		Name:           "Espagne",
		Classification: model.ClassMemberState,
		BaseGDP:        1400000,
		BaseExports:    4200,
		BaseImports:    3800,
		Keys:           []string{"agroalimentaire", "automobile", "vin", "tourisme", "services"},
	},
	{
		Name:           "Pays-Bas",
		Classification: model.ClassMemberState,
		BaseGDP:        900000,
		BaseExports:    5800,
		BaseImports:    6200,
		Keys:           []string{"logistique", "agriculture", "energie", "chimie", "services_financiers"},
	},
	{
		Name:           "Canada",
		Classification: model.ClassPartner,
		BaseGDP:        1800000,
		BaseExports:    42000,
		BaseImports:    45000,
		Keys:           []string{"agriculture", "energie", "automobile", "bois", "minerais"},
	},
	{
		Name:           "UE-27",
		Classification: model.ClassUnion,
		BaseGDP:        15500000,
		BaseExports:    420000,
		BaseImports:    380000,
		Keys:           []string{"automobile", "agroalimentaire", "chimie", "machines", "services"},
	},
	{
		Name:           "Agriculture",
		Classification: model.ClassSector,
		BaseExports:    8500,
		BaseImports:    7200,
		Keys:           []string{"France", "Allemagne", "Pays-Bas", "Italie", "Espagne"},
	},
	{
		Name:           "Automobile",
		Classification: model.ClassSector,
		BaseExports:    32000,
		BaseImports:    28000,
		Keys:           []string{"Allemagne", "France", "Italie", "Espagne", "République tchèque"},
	},
	{
		Name:           "Services",
		Classification: model.ClassSector,
		BaseExports:    28000,
		BaseImports:    25000,
		Keys:           []string{"France", "Allemagne", "Royaume-Uni", "Pays-Bas", "Irlande"},
	},
}
