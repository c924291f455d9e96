package domain

// DefaultRoster is the team seeded into an empty employees collection.
var DefaultRoster = []Employee{
	{ID: "ayca_cisem", Name: "AYÇA ÇİSEM ÇOBAN", ShortName: "AYÇA Ç.", Position: PositionTL, WorkType: WorkTypeOffice, Color: "#E91E63"},
	{ID: "enis", Name: "ENİS USLU", ShortName: "ENİS U.", Position: PositionTL, WorkType: WorkTypeOffice, Color: "#2196F3"},
	{ID: "onur", Name: "ONUR KARAGÜLER", ShortName: "ONUR K.", Position: PositionTL, WorkType: WorkTypeOffice, Color: "#FF5722"},
	{ID: "busra", Name: "BÜŞRA PARILTI", ShortName: "BÜŞRA P.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#9C27B0"},
	{ID: "sila", Name: "SILA USTA", ShortName: "SILA U.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#00BCD4"},
	{ID: "nergiz", Name: "NERGİZ OZĞAN", ShortName: "NERGİZ O.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#4CAF50"},
	{ID: "aysun", Name: "AYSUN KUL", ShortName: "AYSUN K.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#CDDC39"},
	{ID: "elif", Name: "ELİF ERKAN", ShortName: "ELİF E.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#FF9800"},
	{ID: "ebru", Name: "EBRU FİDAN", ShortName: "EBRU F.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#795548"},
	{ID: "ayca_demir", Name: "AYÇA DEMİR", ShortName: "AYÇA D.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#607D8B"},
	{ID: "kader", Name: "KADER MÜREN", ShortName: "KADER M.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#F44336"},
	{ID: "rabia", Name: "RABİA BATUK", ShortName: "RABİA B.", Position: PositionAgent, WorkType: WorkTypeOffice, Color: "#673AB7"},
}
