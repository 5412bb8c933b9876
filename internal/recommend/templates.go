package recommend

import (
	"github.com/tldm-bits/ordnance-service/internal/models"
)

// DefaultMissionType is substituted when a request names a mission type
// without a template.
const DefaultMissionType = models.MissionCoastalPatrol

// missionTemplates is the immutable baseline loadout per mission type.
// Quantities are per-week baselines scaled by the generator.
var missionTemplates = map[models.MissionType]models.MissionTemplate{
	models.MissionCoastalPatrol: {
		MissionType: models.MissionCoastalPatrol,
		Primary: []models.TemplateItem{
			{Name: "76mm Naval Gun Rounds", BaseQuantity: 12, Priority: "high"},
			{Name: "5.56mm Ammunition", BaseQuantity: 400, Priority: "medium"},
			{Name: "Signal Flares", BaseQuantity: 8, Priority: "low"},
		},
		Backup: []models.BackupItem{
			{Name: "30mm Cannon Rounds", Quantity: 60, Reason: "Secondary armament reserve"},
			{Name: "Smoke Markers", Quantity: 6, Reason: "Search and rescue marking"},
		},
		RiskLevel:      "low",
		ComplexityBase: 20,
	},
	models.MissionAntiSubmarine: {
		MissionType: models.MissionAntiSubmarine,
		Primary: []models.TemplateItem{
			{Name: "A244S Torpedo", BaseQuantity: 4, Priority: "critical"},
			{Name: "Depth Charges", BaseQuantity: 10, Priority: "high"},
			{Name: "Sonobuoys", BaseQuantity: 24, Priority: "high"},
		},
		Backup: []models.BackupItem{
			{Name: "76mm Naval Gun Rounds", Quantity: 20, Reason: "Surface self-defence"},
		},
		RiskLevel:      "high",
		ComplexityBase: 40,
	},
	models.MissionSurfaceWarfare: {
		MissionType: models.MissionSurfaceWarfare,
		Primary: []models.TemplateItem{
			{Name: "EXOCET MM40 Missile", BaseQuantity: 2, Priority: "critical"},
			{Name: "76mm Naval Gun Rounds", BaseQuantity: 40, Priority: "high"},
			{Name: "30mm Cannon Rounds", BaseQuantity: 200, Priority: "medium"},
		},
		Backup: []models.BackupItem{
			{Name: "Chaff Decoys", Quantity: 12, Reason: "Missile defence"},
			{Name: "Signal Flares", Quantity: 10, Reason: "Night identification"},
		},
		RiskLevel:      "high",
		ComplexityBase: 45,
	},
	models.MissionMineCountermeasures: {
		MissionType: models.MissionMineCountermeasures,
		Primary: []models.TemplateItem{
			{Name: "Mine Disposal Charges", BaseQuantity: 8, Priority: "critical"},
			{Name: "Demolition Charges", BaseQuantity: 12, Priority: "high"},
			{Name: "Marker Buoys", BaseQuantity: 16, Priority: "medium"},
		},
		Backup: []models.BackupItem{
			{Name: "5.56mm Ammunition", Quantity: 200, Reason: "Force protection"},
		},
		RiskLevel:      "medium",
		ComplexityBase: 35,
	},
	models.MissionEscortOperations: {
		MissionType: models.MissionEscortOperations,
		Primary: []models.TemplateItem{
			{Name: "EXOCET MM40 Missile", BaseQuantity: 1, Priority: "high"},
			{Name: "76mm Naval Gun Rounds", BaseQuantity: 24, Priority: "high"},
			{Name: "Chaff Decoys", BaseQuantity: 8, Priority: "medium"},
		},
		Backup: []models.BackupItem{
			{Name: "A244S Torpedo", Quantity: 2, Reason: "Subsurface threat contingency"},
		},
		RiskLevel:      "medium",
		ComplexityBase: 30,
	},
	models.MissionMaritimeInterdict: {
		MissionType: models.MissionMaritimeInterdict,
		Primary: []models.TemplateItem{
			{Name: "12.7mm Ammunition", BaseQuantity: 600, Priority: "high"},
			{Name: "5.56mm Ammunition", BaseQuantity: 800, Priority: "high"},
			{Name: "Stun Grenades", BaseQuantity: 12, Priority: "medium"},
		},
		Backup: []models.BackupItem{
			{Name: "Signal Flares", Quantity: 12, Reason: "Warning shots and signalling"},
			{Name: "76mm Naval Gun Rounds", Quantity: 10, Reason: "Escalation reserve"},
		},
		RiskLevel:      "medium",
		ComplexityBase: 32,
	},
	models.MissionTrainingExercise: {
		MissionType: models.MissionTrainingExercise,
		Primary: []models.TemplateItem{
			{Name: "76mm Practice Rounds", BaseQuantity: 30, Priority: "medium"},
			{Name: "5.56mm Ammunition", BaseQuantity: 1000, Priority: "medium"},
			{Name: "Practice Torpedoes", BaseQuantity: 2, Priority: "low"},
		},
		Backup: []models.BackupItem{
			{Name: "Smoke Markers", Quantity: 10, Reason: "Exercise area marking"},
		},
		RiskLevel:      "low",
		ComplexityBase: 15,
	},
}

// TemplateFor returns the template for a mission type, substituting the
// Coastal Patrol baseline for unknown types. Recommendation generation is
// never refused over a missing template.
func TemplateFor(missionType models.MissionType) models.MissionTemplate {
	if tpl, ok := missionTemplates[missionType]; ok {
		return tpl
	}
	return missionTemplates[DefaultMissionType]
}
