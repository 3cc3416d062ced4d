package entities

// Seed fixtures loaded into an empty store when seeding is enabled.

func SeedMachines() []Machine {
	return []Machine{
		{ID: "T-001", Name: "Tractor John Deere 6120M", Type: "Tractor", Status: MachineOperational, Location: "Cuartel Norte", LastMaintenance: "2024-01-15", NextMaintenance: "2024-04-15", FuelLevel: 85, HoursWorked: 1250},
		{ID: "T-002", Name: "Tractor Case IH Farmall 75A", Type: "Tractor", Status: MachineMaintenance, Location: "Taller", LastMaintenance: "2024-01-20", NextMaintenance: "2024-04-20", FuelLevel: 45, HoursWorked: 980},
		{ID: "C-001", Name: "Cosechadora Case IH 2166", Type: "Cosechadora", Status: MachineIdle, Location: "Galpón Principal", LastMaintenance: "2024-01-10", NextMaintenance: "2024-04-10", FuelLevel: 60, HoursWorked: 750},
		{ID: "P-001", Name: "Pulverizadora Apache 1020", Type: "Pulverizadora", Status: MachineInUse, Location: "Cuartel Sur", LastMaintenance: "2024-01-25", NextMaintenance: "2024-04-25", FuelLevel: 70, HoursWorked: 420},
		{ID: "S-001", Name: "Sembradora Amazone Cirrus 6003", Type: "Sembradora", Status: MachineOperational, Location: "Galpón Secundario", LastMaintenance: "2024-01-12", NextMaintenance: "2024-04-12", FuelLevel: 90, HoursWorked: 320},
	}
}

func SeedTasks() []Task {
	two, six := 2.0, 6.0
	return []Task{
		{ID: "T-001", Title: "Siembra de Maíz - Cuartel Norte", Description: "Preparar y sembrar maíz en el cuartel norte, verificar humedad del suelo antes de iniciar", Type: "siembra", Priority: PriorityHigh, Status: TaskPending, AssignedTo: "Juan Pérez", Field: "Cuartel Norte", DueDate: "2024-02-15", CreatedDate: "2024-02-01", EstimatedHours: 8},
		{ID: "T-002", Title: "Aplicación de Fertilizante NPK", Description: "Aplicar fertilizante NPK 15-15-15 en el cuartel sur según análisis de suelo", Type: "fertilizacion", Priority: PriorityHigh, Status: TaskInProgress, AssignedTo: "María González", Field: "Cuartel Sur", DueDate: "2024-02-12", CreatedDate: "2024-02-05", EstimatedHours: 4, CompletedHours: &two},
		{ID: "T-003", Title: "Mantenimiento Tractor T-001", Description: "Cambio de aceite, filtros y revisión general del tractor T-001", Type: "mantenimiento", Priority: PriorityMedium, Status: TaskCompleted, AssignedTo: "Carlos Rodríguez", Field: "Taller", DueDate: "2024-02-08", CreatedDate: "2024-02-01", EstimatedHours: 6, CompletedHours: &six},
		{ID: "T-004", Title: "Control de Plagas - Áfidos", Description: "Inspección y tratamiento contra áfidos en el cuartel este", Type: "control-plagas", Priority: PriorityHigh, Status: TaskOverdue, AssignedTo: "Ana Martínez", Field: "Cuartel Este", DueDate: "2024-02-05", CreatedDate: "2024-01-28", EstimatedHours: 3},
		{ID: "T-005", Title: "Riego por Aspersión", Description: "Activar sistema de riego por aspersión en cuartel oeste por 4 horas", Type: "riego", Priority: PriorityMedium, Status: TaskPending, AssignedTo: "Luis Torres", Field: "Cuartel Oeste", DueDate: "2024-02-14", CreatedDate: "2024-02-08", EstimatedHours: 1},
	}
}

func SeedFertilizations() []FertilizationRecord {
	return []FertilizationRecord{
		{ID: "F-001", Field: "Cuartel Norte", Crop: "Maíz", FertilizerType: "NPK 15-15-15", Composition: "15% N, 15% P2O5, 15% K2O", ApplicationRate: 200, TotalAmount: 500, ApplicationMethod: "Aplicación al suelo", ApplicationDate: "2024-02-01", NextApplicationDate: "2024-03-15", Cost: 150000, AppliedBy: "Juan Pérez", Notes: "Aplicación base antes de siembra", Status: FertilizationApplied},
		{ID: "F-002", Field: "Cuartel Sur", Crop: "Soja", FertilizerType: "Urea 46%", Composition: "46% N", ApplicationRate: 150, TotalAmount: 300, ApplicationMethod: "Aplicación foliar", ApplicationDate: "2024-02-15", NextApplicationDate: "2024-03-01", Cost: 90000, AppliedBy: "María González", Notes: "Aplicación de nitrógeno en etapa vegetativa", Status: FertilizationScheduled},
		{ID: "F-003", Field: "Cuartel Este", Crop: "Trigo", FertilizerType: "Fosfato Diamónico", Composition: "18% N, 46% P2O5", ApplicationRate: 180, TotalAmount: 450, ApplicationMethod: "Aplicación al suelo", ApplicationDate: "2024-01-20", NextApplicationDate: "2024-02-20", Cost: 135000, AppliedBy: "Carlos Rodríguez", Notes: "Aplicación de fósforo para desarrollo radicular", Status: FertilizationOverdue},
	}
}

func SeedFields() []Field {
	return []Field{
		{ID: "C-001", Name: "Cuartel Norte", Area: 25.5, CropType: "Maíz", SoilType: "Franco arcilloso", IrrigationSystem: "Riego por goteo", Status: FieldActive, PlantingDate: "2024-01-15", ExpectedHarvestDate: "2024-06-15", LastSoilAnalysis: "2024-01-01", PH: 6.8, OrganicMatter: 3.2, Nitrogen: 45, Phosphorus: 25, Potassium: 180, Productivity: 85, Notes: "Campo con buen drenaje, ideal para maíz", Coordinates: Coordinates{Lat: -34.6037, Lng: -58.3816}},
		{ID: "C-002", Name: "Cuartel Sur", Area: 18.3, CropType: "Soja", SoilType: "Franco limoso", IrrigationSystem: "Riego por aspersión", Status: FieldActive, PlantingDate: "2024-02-01", ExpectedHarvestDate: "2024-07-01", LastSoilAnalysis: "2023-12-15", PH: 7.1, OrganicMatter: 2.8, Nitrogen: 38, Phosphorus: 22, Potassium: 165, Productivity: 78, Notes: "Requiere monitoreo de plagas", Coordinates: Coordinates{Lat: -34.6137, Lng: -58.3716}},
		{ID: "C-003", Name: "Cuartel Este", Area: 32.1, CropType: "Trigo", SoilType: "Franco arenoso", IrrigationSystem: "Riego por surcos", Status: FieldPreparation, PlantingDate: "2024-03-01", ExpectedHarvestDate: "2024-08-15", LastSoilAnalysis: "2024-01-10", PH: 6.5, OrganicMatter: 2.5, Nitrogen: 42, Phosphorus: 28, Potassium: 155, Productivity: 72, Notes: "En preparación para siembra de trigo", Coordinates: Coordinates{Lat: -34.5937, Lng: -58.3916}},
		{ID: "C-004", Name: "Cuartel Oeste", Area: 22.7, CropType: "Girasol", SoilType: "Franco", IrrigationSystem: "Riego por goteo", Status: FieldResting, LastSoilAnalysis: "2023-11-20", PH: 7.0, OrganicMatter: 3.5, Nitrogen: 35, Phosphorus: 20, Potassium: 170, Productivity: 0, Notes: "Campo en descanso, rotación de cultivos", Coordinates: Coordinates{Lat: -34.6237, Lng: -58.3616}},
	}
}
