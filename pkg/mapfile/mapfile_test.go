package mapfile_test

// sampleMap is a cut down map file of a small Cortex-M firmware. The .text
// section declares 8 bytes more than its placements add up to and .bss has a
// symbol at a different address to the object it belongs to.
const sampleMap = `Archive member included to satisfy reference by file (symbol)

Memory Configuration

Name             Origin             Length             Attributes
FLASH            0x08000000         0x00010000         xr
RAM              0x20000000         0x00005000         xrw

Linker script and memory map

LOAD CMakeFiles/app.dir/main.c.obj
LOAD /usr/lib/libc.a
                0x20000000                _estack = 0x20000000

.isr_vector     0x08000000       0xc0
 *(.isr_vector)
 .isr_vector    0x08000000       0xc0 CMakeFiles/app.dir/startup.s.obj
                0x08000000                g_pfnVectors

.text           0x080000c0       0x48
 *(.text)
 .text          0x080000c0       0x20 CMakeFiles/app.dir/main.c.obj
                0x080000c0                main
 .text          0x080000e0       0x1c CMakeFiles/app.dir/util.c.obj
                0x080000e0                util_init
 *fill*         0x080000fc        0x4
 *(.text*)

.ARM.exidx
                0x08000108        0x0

.bss            0x20000000       0x10 load address 0x08000108
 .bss           0x20000000       0x10 CMakeFiles/app.dir/main.c.obj
                0x20000004                counter
OUTPUT(app.elf elf32-littlearm)
LOAD linker stubs

.comment        0x00000000       0x33
 .comment       0x00000000       0x33 CMakeFiles/app.dir/main.c.obj
`

// mmuSection is a section block with two subsections, each placing one
// object.
const mmuSection = `.mmu_table      0x2fff8000     0x8000
 *(.mmu_table)
 .mmu_table     0x2fff8000     0x4000 CMakeFiles/EDESapp.dir/drivers/a7/mmu.cpp.obj
                0x2fff8000                drivers::a7::Mmu::translationTable
 *(.page_tables)
 .page_tables   0x2fffc000     0x4000 CMakeFiles/EDESapp.dir/drivers/a7/mmu.cpp.obj
                0x2fffc000                drivers::a7::Mmu::pageTables`

// mmuSubsections is the body of mmuSection.
const mmuSubsections = ` *(.mmu_table)
 .mmu_table     0x2fff8000     0x4000 CMakeFiles/EDESapp.dir/drivers/a7/mmu.cpp.obj
                0x2fff8000                drivers::a7::Mmu::translationTable
 *(.page_tables)
 .page_tables   0x2fffc000     0x4000 CMakeFiles/EDESapp.dir/drivers/a7/mmu.cpp.obj
                0x2fffc000                drivers::a7::Mmu::pageTables`
